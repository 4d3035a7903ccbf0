// Package alerts genera avisos operativos derivados de la configuración de
// negocio inyectada: stock bajo por producto y garantías por vencer.
package alerts

import (
	"context"
	"time"

	"github.com/almakhzan/warehouse-api/internal/application/dto"
	"github.com/almakhzan/warehouse-api/internal/domain/repository"
)

// UseCase consultas de alerta. La configuración (umbral, ventana) llega del
// repositorio de settings en cada invocación: sin estado global ni caché.
type UseCase struct {
	itemRepo     repository.ItemRepository
	productRepo  repository.ProductRepository
	settingsRepo repository.SettingsRepository
}

// NewUseCase construye el caso de uso de alertas.
func NewUseCase(
	itemRepo repository.ItemRepository,
	productRepo repository.ProductRepository,
	settingsRepo repository.SettingsRepository,
) *UseCase {
	return &UseCase{itemRepo: itemRepo, productRepo: productRepo, settingsRepo: settingsRepo}
}

// LowStock productos cuyo conteo in_stock está por debajo del umbral
// configurado. Productos sin ninguna unidad no aparecen (nunca se recibieron
// o es un paquete).
func (uc *UseCase) LowStock(ctx context.Context) ([]dto.LowStockAlertDTO, error) {
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	counts, err := uc.itemRepo.CountInStockByProduct()
	if err != nil {
		return nil, err
	}

	alerts := make([]dto.LowStockAlertDTO, 0)
	for _, c := range counts {
		if c.Count >= settings.LowStockThreshold {
			continue
		}
		name, sku := "", ""
		if p, err := uc.productRepo.GetByID(c.ProductID); err == nil && p != nil {
			name, sku = p.Name, p.SKU
		}
		alerts = append(alerts, dto.LowStockAlertDTO{
			ProductID:   c.ProductID,
			ProductName: name,
			SKU:         sku,
			InStock:     c.Count,
			Threshold:   settings.LowStockThreshold,
		})
	}
	return alerts, nil
}

// WarrantyExpiring unidades en stock cuya garantía vence dentro de la ventana
// configurada de días.
func (uc *UseCase) WarrantyExpiring(ctx context.Context) ([]dto.WarrantyAlertDTO, error) {
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	until := now.AddDate(0, 0, settings.WarrantyAlertDays)

	items, err := uc.itemRepo.ListWarrantyEnding(now, until)
	if err != nil {
		return nil, err
	}

	alerts := make([]dto.WarrantyAlertDTO, 0, len(items))
	for i := range items {
		it := &items[i]
		if it.WarrantyEndDate == nil {
			continue
		}
		name := it.BundleName
		if p, err := uc.productRepo.GetByID(it.ProductID); err == nil && p != nil {
			name = p.Name
		}
		alerts = append(alerts, dto.WarrantyAlertDTO{
			ItemID:          it.ID,
			SerialNumber:    it.SerialNumber,
			ProductName:     name,
			WarrantyEndDate: *it.WarrantyEndDate,
			DaysLeft:        daysBetween(now, *it.WarrantyEndDate),
		})
	}
	return alerts, nil
}

func daysBetween(from, to time.Time) int {
	d := int(to.Sub(from).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
