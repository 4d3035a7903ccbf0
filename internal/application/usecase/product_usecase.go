package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/almakhzan/warehouse-api/internal/application/dto"
	"github.com/almakhzan/warehouse-api/internal/domain"
	"github.com/almakhzan/warehouse-api/internal/domain/entity"
	"github.com/almakhzan/warehouse-api/internal/domain/repository"
)

// ProductUseCase CRUD del catálogo, incluida la lista de materiales de los
// paquetes.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create valida y persiste un producto. Para paquetes valida la lista de
// materiales: cantidades >= 1 y componentes que referencian productos simples
// existentes (los paquetes anidados no están soportados).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ProductType != entity.ProductTypeSimple && in.ProductType != entity.ProductTypeBundle {
		return nil, domain.ErrInvalidInput
	}
	if existing, err := uc.repo.GetBySKU(in.SKU); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}

	components, err := uc.validateComponents(in.ProductType, in.Components)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	p := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		SKU:         in.SKU,
		Category:    in.Category,
		CostPrice:   in.CostPrice,
		ProductType: in.ProductType,
		Components:  components,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Update edita un producto. El tipo no cambia después del alta; la lista de
// materiales sí, y la verificación de completitud siempre lee la definición
// vigente, así que el cambio aplica retroactivamente a instancias históricas.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}

	components, err := uc.validateComponents(p.ProductType, in.Components)
	if err != nil {
		return nil, err
	}

	p.Name = in.Name
	p.SKU = in.SKU
	p.Category = in.Category
	p.CostPrice = in.CostPrice
	p.Components = components
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetByID devuelve el producto o ErrNotFound.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(p), nil
}

// List catálogo completo, opcionalmente por categoría.
func (uc *ProductUseCase) List(category string) ([]*dto.ProductResponse, error) {
	products, err := uc.repo.List(category)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Delete elimina un producto del catálogo. Las unidades ya recibidas lo
// referencian por id y los reportes degradan a marcador si deja de resolver.
func (uc *ProductUseCase) Delete(id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// validateComponents valida la lista de materiales según el tipo.
func (uc *ProductUseCase) validateComponents(productType string, in []dto.BundleComponentDTO) ([]entity.BundleComponent, error) {
	if productType != entity.ProductTypeBundle {
		if len(in) > 0 {
			return nil, domain.ErrInvalidInput
		}
		return nil, nil
	}
	if len(in) == 0 {
		return nil, domain.ErrInvalidInput
	}
	components := make([]entity.BundleComponent, 0, len(in))
	for _, c := range in {
		if c.ProductID == "" || c.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		ref, err := uc.repo.GetByID(c.ProductID)
		if err != nil {
			return nil, err
		}
		if ref == nil {
			return nil, domain.ErrNotFound
		}
		if ref.IsBundle() {
			return nil, domain.ErrBundleComponent
		}
		components = append(components, entity.BundleComponent{ProductID: c.ProductID, Quantity: c.Quantity})
	}
	return components, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	comps := make([]dto.BundleComponentDTO, 0, len(p.Components))
	for _, c := range p.Components {
		comps = append(comps, dto.BundleComponentDTO{ProductID: c.ProductID, Quantity: c.Quantity})
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Category:    p.Category,
		CostPrice:   p.CostPrice,
		ProductType: p.ProductType,
		Components:  comps,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
