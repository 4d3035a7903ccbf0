package bundle

import (
	"github.com/almakhzan/warehouse-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// LineItem una unidad individual a poblar y recibir, producto de expandir un
// paquete. SerialNumber queda vacío: lo captura el operador al recibir.
type LineItem struct {
	ProductID    string
	ProductName  string
	SerialNumber string
	CostPrice    decimal.Decimal
}

// ExpandComponents expande la lista de materiales de un paquete en líneas
// individuales: para cada repetición (bucle externo) recorre los componentes
// en su orden declarado (bucle medio) y emite Quantity copias de cada uno
// (bucle interno). Con todos los componentes resolubles el resultado tiene
// exactamente bundleCount × Σ(quantity) líneas.
//
// Componentes cuyo ProductID no resuelve en el catálogo se omiten en
// silencio. No valida bundleCount: el caller verifica que sea >= 1 antes de
// llamar.
func ExpandComponents(catalog Catalog, bundleProduct *entity.Product, bundleCount int) []LineItem {
	var lines []LineItem
	for rep := 0; rep < bundleCount; rep++ {
		lines = append(lines, expandOnce(catalog, bundleProduct)...)
	}
	return lines
}

// expandOnce expande una sola repetición del paquete.
func expandOnce(catalog Catalog, bundleProduct *entity.Product) []LineItem {
	var lines []LineItem
	for _, comp := range bundleProduct.Components {
		p := catalog.ProductByID(comp.ProductID)
		if p == nil {
			continue
		}
		for u := 0; u < comp.Quantity; u++ {
			lines = append(lines, LineItem{
				ProductID:   p.ID,
				ProductName: p.Name,
				CostPrice:   p.CostPrice,
			})
		}
	}
	return lines
}
