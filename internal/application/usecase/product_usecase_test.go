package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almakhzan/warehouse-api/internal/application/dto"
	"github.com/almakhzan/warehouse-api/internal/application/usecase"
	"github.com/almakhzan/warehouse-api/internal/domain"
	"github.com/almakhzan/warehouse-api/internal/domain/entity"
)

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

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

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) List(category string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if category == "" || p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func simpleProduct(id, name, sku string) *entity.Product {
	return &entity.Product{ID: id, Name: name, SKU: sku, ProductType: entity.ProductTypeSimple}
}

// ── alta ────────────────────────────────────────────────────────────

func TestCreateProduct_PaqueteConListaDeMaterialesValida(t *testing.T) {
	repo := newFakeProductRepo(
		simpleProduct("p1", "Router", "RT-01"),
		simpleProduct("p2", "Antena", "AN-01"),
	)
	uc := usecase.NewProductUseCase(repo)

	got, err := uc.Create(dto.CreateProductRequest{
		Name:        "Kit instalación",
		SKU:         "KIT-01",
		ProductType: entity.ProductTypeBundle,
		CostPrice:   decimal.RequireFromString("25"),
		Components: []dto.BundleComponentDTO{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	// El orden declarado de los componentes se conserva.
	require.Len(t, got.Components, 2)
	assert.Equal(t, "p1", got.Components[0].ProductID)
	assert.Equal(t, 2, got.Components[0].Quantity)
}

func TestCreateProduct_RechazaPaqueteSinComponentes(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{
		Name: "Kit", SKU: "KIT-01", ProductType: entity.ProductTypeBundle,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateProduct_RechazaPaqueteAnidado(t *testing.T) {
	inner := &entity.Product{
		ID: "kit1", Name: "Kit interno", SKU: "KIT-01",
		ProductType: entity.ProductTypeBundle,
		Components:  []entity.BundleComponent{{ProductID: "p1", Quantity: 1}},
	}
	uc := usecase.NewProductUseCase(newFakeProductRepo(simpleProduct("p1", "Router", "RT-01"), inner))

	_, err := uc.Create(dto.CreateProductRequest{
		Name: "Kit externo", SKU: "KIT-02", ProductType: entity.ProductTypeBundle,
		Components: []dto.BundleComponentDTO{{ProductID: "kit1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrBundleComponent)
}

func TestCreateProduct_RechazaComponenteInexistenteOCantidadCero(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(simpleProduct("p1", "Router", "RT-01")))

	_, err := uc.Create(dto.CreateProductRequest{
		Name: "Kit", SKU: "KIT-01", ProductType: entity.ProductTypeBundle,
		Components: []dto.BundleComponentDTO{{ProductID: "fantasma", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create(dto.CreateProductRequest{
		Name: "Kit", SKU: "KIT-02", ProductType: entity.ProductTypeBundle,
		Components: []dto.BundleComponentDTO{{ProductID: "p1", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateProduct_RechazaComponentesEnProductoSimple(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(simpleProduct("p1", "Router", "RT-01")))

	_, err := uc.Create(dto.CreateProductRequest{
		Name: "Cable", SKU: "CB-01", ProductType: entity.ProductTypeSimple,
		Components: []dto.BundleComponentDTO{{ProductID: "p1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateProduct_RechazaSKUDuplicado(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(simpleProduct("p1", "Router", "RT-01")))

	_, err := uc.Create(dto.CreateProductRequest{
		Name: "Otro router", SKU: "RT-01", ProductType: entity.ProductTypeSimple,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ── edición ─────────────────────────────────────────────────────────

func TestUpdateProduct_EditaListaDeMaterialesDeUnPaquete(t *testing.T) {
	repo := newFakeProductRepo(
		simpleProduct("p1", "Router", "RT-01"),
		simpleProduct("p2", "Antena", "AN-01"),
		&entity.Product{
			ID: "kit", Name: "Kit", SKU: "KIT-01",
			ProductType: entity.ProductTypeBundle,
			Components:  []entity.BundleComponent{{ProductID: "p1", Quantity: 1}},
		},
	)
	uc := usecase.NewProductUseCase(repo)

	got, err := uc.Update("kit", dto.UpdateProductRequest{
		Name: "Kit ampliado", SKU: "KIT-01",
		Components: []dto.BundleComponentDTO{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Kit ampliado", got.Name)
	assert.Len(t, got.Components, 2)
	// El tipo no cambia después del alta.
	assert.Equal(t, entity.ProductTypeBundle, got.ProductType)
}

func TestUpdateProduct_ProductoInexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Update("fantasma", dto.UpdateProductRequest{Name: "X", SKU: "X-01"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── baja ────────────────────────────────────────────────────────────

func TestDeleteProduct_EliminaYDespuesNoResuelve(t *testing.T) {
	repo := newFakeProductRepo(simpleProduct("p1", "Router", "RT-01"))
	uc := usecase.NewProductUseCase(repo)

	require.NoError(t, uc.Delete("p1"))

	_, err := uc.GetByID("p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete("p1"), domain.ErrNotFound)
}
