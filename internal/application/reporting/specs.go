package reporting

import (
	"fmt"
	"time"

	"github.com/almakhzan/warehouse-api/internal/domain/bundle"
	"github.com/almakhzan/warehouse-api/internal/domain/entity"
	"github.com/almakhzan/warehouse-api/internal/domain/report"
)

// Los tres tipos de reporte comparten el mismo plegado; difieren en la clave
// compuesta, la contraparte y la fecha representativa. La clave siempre lleva
// producto-o-paquete y contraparte; los productos simples añaden motivo y
// costo unitario (costos distintos nunca se funden: se conservan los
// subtotales por tramo de precio). Cada instancia de paquete es su propia
// fila, así que la parte de paquete de la clave es el BundleGroupID.

// productKey parte producto-o-paquete de la clave.
func productKey(it *entity.InventoryItem) string {
	if it.InBundle() {
		return report.BundleKeyPrefix + it.BundleGroupID
	}
	return it.ProductID
}

// initRow campos de presentación comunes a los tres reportes.
func initRow(catalog bundle.Catalog, it *entity.InventoryItem, counterparty, reason string) report.Row {
	row := report.Row{
		CounterpartyName: counterparty,
		Reason:           report.OrDefault(reason),
		UnitPrice:        it.CostPrice,
	}
	if it.InBundle() {
		row.ProductName = report.OrDefault(it.BundleName)
		return row
	}
	if p := catalog.ProductByID(it.ProductID); p != nil {
		row.ProductName = p.Name
		row.SKU = p.SKU
	} else {
		row.ProductName = report.Placeholder
	}
	return row
}

// receivingSpec reporte de recepciones: agrupa por producto/paquete +
// proveedor + motivo de compra + costo; fecha de compra.
func receivingSpec(catalog bundle.Catalog, dir *Directory) report.GroupSpec {
	return report.GroupSpec{
		Key: func(it *entity.InventoryItem) string {
			if it.InBundle() {
				return fmt.Sprintf("%s|%s", productKey(it), it.SupplierID)
			}
			return fmt.Sprintf("%s|%s|%s|%s", productKey(it), it.SupplierID, it.PurchaseReason, it.CostPrice.String())
		},
		Init: func(it *entity.InventoryItem) report.Row {
			return initRow(catalog, it, dir.SupplierName(it.SupplierID), it.PurchaseReason)
		},
		Date: func(it *entity.InventoryItem) time.Time { return it.PurchaseDate },
	}
}

// dispatchSpec reporte de despachos: agrupa por producto/paquete + cliente de
// despacho + motivo de despacho + costo; fecha de despacho (si falta, fecha
// de compra para no perder la fila).
func dispatchSpec(catalog bundle.Catalog, dir *Directory) report.GroupSpec {
	return report.GroupSpec{
		Key: func(it *entity.InventoryItem) string {
			if it.InBundle() {
				return fmt.Sprintf("%s|%s", productKey(it), it.DispatchClientID)
			}
			return fmt.Sprintf("%s|%s|%s|%s", productKey(it), it.DispatchClientID, it.DispatchReason, it.CostPrice.String())
		},
		Init: func(it *entity.InventoryItem) report.Row {
			return initRow(catalog, it, dir.ClientFullName(it.DispatchClientID), it.DispatchReason)
		},
		Date: func(it *entity.InventoryItem) time.Time {
			if it.DispatchDate != nil {
				return *it.DispatchDate
			}
			return it.PurchaseDate
		},
	}
}

// claimSpec reclamación financiera: agrupa por producto/paquete + cliente
// destino + motivo de compra + costo; fecha de compra.
func claimSpec(catalog bundle.Catalog, dir *Directory) report.GroupSpec {
	return report.GroupSpec{
		Key: func(it *entity.InventoryItem) string {
			if it.InBundle() {
				return fmt.Sprintf("%s|%s", productKey(it), it.DestinationClientID)
			}
			return fmt.Sprintf("%s|%s|%s|%s", productKey(it), it.DestinationClientID, it.PurchaseReason, it.CostPrice.String())
		},
		Init: func(it *entity.InventoryItem) report.Row {
			return initRow(catalog, it, dir.ClientFullName(it.DestinationClientID), it.PurchaseReason)
		},
		Date: func(it *entity.InventoryItem) time.Time { return it.PurchaseDate },
	}
}
