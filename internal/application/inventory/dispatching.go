package inventory

import (
	"context"
	"time"

	"github.com/almakhzan/warehouse-api/internal/application/dto"
	"github.com/almakhzan/warehouse-api/internal/domain"
	"github.com/almakhzan/warehouse-api/internal/domain/entity"
	"github.com/almakhzan/warehouse-api/internal/domain/repository"
)

// DispatchingUseCase transiciones de estado de unidades: despacho a cliente,
// deshacer despacho y baja (scrap). Las reglas de transición viven aquí, no
// en el núcleo de reportes.
type DispatchingUseCase struct {
	txRunner     TxRunner
	locationRepo repository.LocationRepository
}

// NewDispatchingUseCase construye el caso de uso.
func NewDispatchingUseCase(txRunner TxRunner, locationRepo repository.LocationRepository) *DispatchingUseCase {
	return &DispatchingUseCase{txRunner: txRunner, locationRepo: locationRepo}
}

// Dispatch despacha unidades in_stock (o damaged_on_arrival) hacia un
// cliente, fijando fecha, motivo, referencia y notas. Todo o nada: una unidad
// en estado inválido aborta la transacción completa.
func (uc *DispatchingUseCase) Dispatch(ctx context.Context, in dto.DispatchRequest) error {
	if len(in.ItemIDs) == 0 || in.ClientID == "" || in.Date.IsZero() {
		return domain.ErrInvalidInput
	}
	client, err := uc.locationRepo.GetClient(in.ClientID)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}

	now := time.Now()
	date := in.Date
	return uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, _ repository.ProductRepository) error {
		for _, id := range in.ItemIDs {
			item, err := itemRepo.GetByID(id)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrNotFound
			}
			if item.Status != entity.StatusInStock && item.Status != entity.StatusDamagedOnArrival {
				return domain.ErrInvalidTransition
			}
			item.Status = entity.StatusDispatched
			item.DispatchClientID = in.ClientID
			item.DispatchDate = &date
			item.DispatchReason = in.Reason
			item.DispatchReference = in.Reference
			item.DispatchNotes = in.Notes
			item.UpdatedAt = now
			if err := itemRepo.Update(item); err != nil {
				return err
			}
		}
		return nil
	})
}

// UndoDispatch revierte un despacho: la unidad vuelve a in_stock y se
// limpian todos los campos de despacho.
func (uc *DispatchingUseCase) UndoDispatch(ctx context.Context, itemID string) error {
	if itemID == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, _ repository.ProductRepository) error {
		item, err := itemRepo.GetByID(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if item.Status != entity.StatusDispatched {
			return domain.ErrInvalidTransition
		}
		item.Status = entity.StatusInStock
		item.ClearDispatch()
		item.UpdatedAt = time.Now()
		return itemRepo.Update(item)
	})
}

// Scrap da de baja unidades in_stock (o damaged_on_arrival) fijando la fecha
// de baja. Las unidades permanecen en la base como historial de reportes.
func (uc *DispatchingUseCase) Scrap(ctx context.Context, in dto.ScrapRequest) error {
	if len(in.ItemIDs) == 0 || in.Date.IsZero() {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	date := in.Date
	return uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, _ repository.ProductRepository) error {
		for _, id := range in.ItemIDs {
			item, err := itemRepo.GetByID(id)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrNotFound
			}
			if item.Status != entity.StatusInStock && item.Status != entity.StatusDamagedOnArrival {
				return domain.ErrInvalidTransition
			}
			item.Status = entity.StatusScrapped
			item.ScrapDate = &date
			item.UpdatedAt = now
			if err := itemRepo.Update(item); err != nil {
				return err
			}
		}
		return nil
	})
}
