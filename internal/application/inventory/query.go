package inventory

import (
	"context"
	"fmt"

	"github.com/almakhzan/warehouse-api/internal/application/dto"
	"github.com/almakhzan/warehouse-api/internal/domain"
	"github.com/almakhzan/warehouse-api/internal/domain/entity"
	"github.com/almakhzan/warehouse-api/internal/domain/repository"
)

// QueryUseCase consultas de solo lectura sobre unidades físicas.
type QueryUseCase struct {
	itemRepo repository.ItemRepository
}

// NewQueryUseCase construye el caso de uso de consulta.
func NewQueryUseCase(itemRepo repository.ItemRepository) *QueryUseCase {
	return &QueryUseCase{itemRepo: itemRepo}
}

// List devuelve las unidades que cumplen el filtro.
func (uc *QueryUseCase) List(_ context.Context, in dto.ItemListRequest) ([]dto.ItemResponse, error) {
	filter := repository.ItemFilter{
		ProductID:     in.ProductID,
		Category:      in.Category,
		SupplierID:    in.SupplierID,
		ClientID:      in.ClientID,
		BundleGroupID: in.BundleGroupID,
	}
	if in.Status != "" {
		filter.Statuses = []string{in.Status}
	}
	items, err := uc.itemRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("listar unidades: %w", err)
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		out = append(out, ToItemResponse(&items[i]))
	}
	return out, nil
}

// GetByID devuelve una unidad por su id.
func (uc *QueryUseCase) GetByID(_ context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener unidad: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	resp := ToItemResponse(item)
	return &resp, nil
}

// ToItemResponse mapea la entidad al DTO de respuesta.
func ToItemResponse(it *entity.InventoryItem) dto.ItemResponse {
	return dto.ItemResponse{
		ID:                  it.ID,
		ProductID:           it.ProductID,
		SerialNumber:        it.SerialNumber,
		CostPrice:           it.CostPrice,
		Status:              it.Status,
		PurchaseDate:        it.PurchaseDate,
		PurchaseReason:      it.PurchaseReason,
		SupplierID:          it.SupplierID,
		DestinationClientID: it.DestinationClientID,
		DispatchClientID:    it.DispatchClientID,
		DispatchDate:        it.DispatchDate,
		DispatchReason:      it.DispatchReason,
		DispatchReference:   it.DispatchReference,
		DispatchNotes:       it.DispatchNotes,
		ScrapDate:           it.ScrapDate,
		WarrantyEndDate:     it.WarrantyEndDate,
		BundleGroupID:       it.BundleGroupID,
		BundleName:          it.BundleName,
	}
}
