package reporting_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/almakhzan/warehouse-api/internal/domain/entity"
	"github.com/almakhzan/warehouse-api/internal/domain/repository"
)

// Dobles en memoria de los puertos que consume el caso de uso de reportes.
// Solo los métodos de lectura tienen comportamiento real; el resto no se
// invoca desde la generación de reportes.

// ── items ───────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items      []entity.InventoryItem
	lastFilter repository.ItemFilter
}

func (r *fakeItemRepo) List(filter repository.ItemFilter) ([]entity.InventoryItem, error) {
	r.lastFilter = filter
	out := make([]entity.InventoryItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *fakeItemRepo) Create(*entity.InventoryItem) error { return nil }
func (r *fakeItemRepo) Update(*entity.InventoryItem) error { return nil }
func (r *fakeItemRepo) GetByID(string) (*entity.InventoryItem, error) {
	return nil, nil
}
func (r *fakeItemRepo) GetBySerial(string) (*entity.InventoryItem, error) {
	return nil, nil
}
func (r *fakeItemRepo) CountInStockByProduct() ([]repository.LowStockCount, error) {
	return nil, nil
}
func (r *fakeItemRepo) ListWarrantyEnding(time.Time, time.Time) ([]entity.InventoryItem, error) {
	return nil, nil
}

// ── catálogo ────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products []*entity.Product
}

func (r *fakeProductRepo) List(category string) ([]*entity.Product, error) {
	if category == "" {
		return r.products, nil
	}
	var out []*entity.Product
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Create(*entity.Product) error { return nil }
func (r *fakeProductRepo) Update(*entity.Product) error { return nil }
func (r *fakeProductRepo) Delete(string) error          { return nil }
func (r *fakeProductRepo) GetByID(string) (*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) GetBySKU(string) (*entity.Product, error) {
	return nil, nil
}

// ── ubicaciones ─────────────────────────────────────────────────────

type fakeLocationRepo struct {
	provinces []*entity.Province
	areas     []*entity.Area
	clients   []*entity.Client
}

func (r *fakeLocationRepo) ListProvinces() ([]*entity.Province, error) { return r.provinces, nil }
func (r *fakeLocationRepo) ListAreas(string) ([]*entity.Area, error)   { return r.areas, nil }
func (r *fakeLocationRepo) ListClients(string) ([]*entity.Client, error) {
	return r.clients, nil
}

func (r *fakeLocationRepo) CreateProvince(*entity.Province) error { return nil }
func (r *fakeLocationRepo) DeleteProvince(string) error           { return nil }
func (r *fakeLocationRepo) CreateArea(*entity.Area) error         { return nil }
func (r *fakeLocationRepo) DeleteArea(string) error               { return nil }
func (r *fakeLocationRepo) CreateClient(*entity.Client) error     { return nil }
func (r *fakeLocationRepo) UpdateClient(*entity.Client) error     { return nil }
func (r *fakeLocationRepo) DeleteClient(string) error             { return nil }
func (r *fakeLocationRepo) GetProvince(string) (*entity.Province, error) {
	return nil, nil
}
func (r *fakeLocationRepo) GetArea(string) (*entity.Area, error) {
	return nil, nil
}
func (r *fakeLocationRepo) GetClient(string) (*entity.Client, error) {
	return nil, nil
}

// ── proveedores ─────────────────────────────────────────────────────

type fakeSupplierRepo struct {
	suppliers []*entity.Supplier
}

func (r *fakeSupplierRepo) List() ([]*entity.Supplier, error) { return r.suppliers, nil }

func (r *fakeSupplierRepo) Create(*entity.Supplier) error { return nil }
func (r *fakeSupplierRepo) Update(*entity.Supplier) error { return nil }
func (r *fakeSupplierRepo) Delete(string) error           { return nil }
func (r *fakeSupplierRepo) GetByID(string) (*entity.Supplier, error) {
	return nil, nil
}

// ── configuración ───────────────────────────────────────────────────

type fakeSettingsRepo struct {
	settings entity.Settings
}

func (r *fakeSettingsRepo) Get() (entity.Settings, error) { return r.settings, nil }
func (r *fakeSettingsRepo) Save(entity.Settings) error    { return nil }

// ── ayudantes ───────────────────────────────────────────────────────

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
