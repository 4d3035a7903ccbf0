package inventory_test

import (
	"context"
	"time"

	"github.com/almakhzan/warehouse-api/internal/domain/entity"
	"github.com/almakhzan/warehouse-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria compartidos por los tests del paquete
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items []*entity.InventoryItem
}

func (r *fakeItemRepo) Create(item *entity.InventoryItem) error {
	copied := *item
	r.items = append(r.items, &copied)
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	for _, it := range r.items {
		if it.ID == id {
			copied := *it
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) GetBySerial(normalizedSerial string) (*entity.InventoryItem, error) {
	for _, it := range r.items {
		if entity.NormalizeSerial(it.SerialNumber) == normalizedSerial {
			copied := *it
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) Update(item *entity.InventoryItem) error {
	for i, it := range r.items {
		if it.ID == item.ID {
			copied := *item
			r.items[i] = &copied
			return nil
		}
	}
	return nil
}

func (r *fakeItemRepo) List(filter repository.ItemFilter) ([]entity.InventoryItem, error) {
	var out []entity.InventoryItem
	for _, it := range r.items {
		if filter.BundleGroupID != "" && it.BundleGroupID != filter.BundleGroupID {
			continue
		}
		if filter.ProductID != "" && it.ProductID != filter.ProductID {
			continue
		}
		if len(filter.Statuses) > 0 && !containsString(filter.Statuses, it.Status) {
			continue
		}
		out = append(out, *it)
	}
	return out, nil
}

func (r *fakeItemRepo) CountInStockByProduct() ([]repository.LowStockCount, error) {
	counts := map[string]int{}
	var order []string
	for _, it := range r.items {
		if it.Status != entity.StatusInStock {
			continue
		}
		if _, ok := counts[it.ProductID]; !ok {
			order = append(order, it.ProductID)
		}
		counts[it.ProductID]++
	}
	out := make([]repository.LowStockCount, 0, len(order))
	for _, id := range order {
		out = append(out, repository.LowStockCount{ProductID: id, Count: counts[id]})
	}
	return out, nil
}

func (r *fakeItemRepo) ListWarrantyEnding(now, until time.Time) ([]entity.InventoryItem, error) {
	var out []entity.InventoryItem
	for _, it := range r.items {
		if it.Status != entity.StatusInStock || it.WarrantyEndDate == nil {
			continue
		}
		if it.WarrantyEndDate.Before(now) || it.WarrantyEndDate.After(until) {
			continue
		}
		out = append(out, *it)
	}
	return out, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }

func (r *fakeProductRepo) List(category string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if category == "" || p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error { delete(r.products, id); return nil }

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}

func (r *fakeSupplierRepo) Create(*entity.Supplier) error { return nil }
func (r *fakeSupplierRepo) Update(*entity.Supplier) error { return nil }
func (r *fakeSupplierRepo) Delete(string) error           { return nil }
func (r *fakeSupplierRepo) List() ([]*entity.Supplier, error) {
	return nil, nil
}

type fakeLocationRepo struct {
	clients map[string]*entity.Client
}

func (r *fakeLocationRepo) GetClient(id string) (*entity.Client, error) {
	return r.clients[id], nil
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
func (r *fakeLocationRepo) ListProvinces() ([]*entity.Province, error) {
	return nil, nil
}
func (r *fakeLocationRepo) ListAreas(string) ([]*entity.Area, error) {
	return nil, nil
}
func (r *fakeLocationRepo) ListClients(string) ([]*entity.Client, error) {
	return nil, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los repos en memoria,
// sin transacción real.
type fakeTxRunner struct {
	itemRepo    *fakeItemRepo
	productRepo *fakeProductRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	itemRepo repository.ItemRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(r.itemRepo, r.productRepo)
}
