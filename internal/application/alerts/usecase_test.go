package alerts_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almakhzan/warehouse-api/internal/application/alerts"
	"github.com/almakhzan/warehouse-api/internal/domain/entity"
	"github.com/almakhzan/warehouse-api/internal/domain/repository"
)

// ── dobles ──────────────────────────────────────────────────────────

type fakeItemRepo struct {
	counts   []repository.LowStockCount
	warranty []entity.InventoryItem
}

func (r *fakeItemRepo) CountInStockByProduct() ([]repository.LowStockCount, error) {
	return r.counts, nil
}

func (r *fakeItemRepo) ListWarrantyEnding(time.Time, time.Time) ([]entity.InventoryItem, error) {
	return r.warranty, nil
}

func (r *fakeItemRepo) Create(*entity.InventoryItem) error { return nil }
func (r *fakeItemRepo) Update(*entity.InventoryItem) error { return nil }
func (r *fakeItemRepo) GetByID(string) (*entity.InventoryItem, error) {
	return nil, nil
}
func (r *fakeItemRepo) GetBySerial(string) (*entity.InventoryItem, error) {
	return nil, nil
}
func (r *fakeItemRepo) List(repository.ItemFilter) ([]entity.InventoryItem, error) {
	return nil, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) Create(*entity.Product) error { return nil }
func (r *fakeProductRepo) Update(*entity.Product) error { return nil }
func (r *fakeProductRepo) Delete(string) error          { return nil }
func (r *fakeProductRepo) GetBySKU(string) (*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) List(string) ([]*entity.Product, error) {
	return nil, nil
}

type fakeSettingsRepo struct {
	settings entity.Settings
}

func (r *fakeSettingsRepo) Get() (entity.Settings, error) { return r.settings, nil }
func (r *fakeSettingsRepo) Save(entity.Settings) error    { return nil }

func newAlertsFixture(itemRepo *fakeItemRepo) *alerts.UseCase {
	return alerts.NewUseCase(
		itemRepo,
		&fakeProductRepo{products: map[string]*entity.Product{
			"p1": {ID: "p1", Name: "Router", SKU: "RT-01"},
		}},
		&fakeSettingsRepo{settings: entity.Settings{LowStockThreshold: 5, WarrantyAlertDays: 30}},
	)
}

// ── stock bajo ──────────────────────────────────────────────────────

func TestLowStock_SoloProductosBajoElUmbral(t *testing.T) {
	uc := newAlertsFixture(&fakeItemRepo{counts: []repository.LowStockCount{
		{ProductID: "p1", Count: 2},
		{ProductID: "p2", Count: 5},
		{ProductID: "p3", Count: 9},
	}})

	got, err := uc.LowStock(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ProductID)
	assert.Equal(t, "Router", got[0].ProductName)
	assert.Equal(t, "RT-01", got[0].SKU)
	assert.Equal(t, 2, got[0].InStock)
	assert.Equal(t, 5, got[0].Threshold)
}

func TestLowStock_SinConteosDevuelveListaVacia(t *testing.T) {
	uc := newAlertsFixture(&fakeItemRepo{})

	got, err := uc.LowStock(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

// ── garantías ───────────────────────────────────────────────────────

func TestWarrantyExpiring_CalculaDiasRestantes(t *testing.T) {
	end := time.Now().AddDate(0, 0, 10)
	uc := newAlertsFixture(&fakeItemRepo{warranty: []entity.InventoryItem{{
		ID:              "i1",
		ProductID:       "p1",
		SerialNumber:    "sn-1",
		WarrantyEndDate: &end,
	}}})

	got, err := uc.WarrantyExpiring(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "i1", got[0].ItemID)
	assert.Equal(t, "sn-1", got[0].SerialNumber)
	assert.Equal(t, "Router", got[0].ProductName)
	assert.InDelta(t, 9, got[0].DaysLeft, 1)
}

func TestWarrantyExpiring_ProductoBorradoUsaNombreDePaquete(t *testing.T) {
	end := time.Now().AddDate(0, 0, 3)
	uc := newAlertsFixture(&fakeItemRepo{warranty: []entity.InventoryItem{{
		ID:              "i1",
		ProductID:       "borrado",
		SerialNumber:    "sn-1",
		BundleName:      "Kit instalación",
		WarrantyEndDate: &end,
	}}})

	got, err := uc.WarrantyExpiring(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "Kit instalación", got[0].ProductName)
}
