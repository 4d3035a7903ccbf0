package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de producto.
const (
	ProductTypeSimple = "simple"
	ProductTypeBundle = "bundle"
)

// BundleComponent una línea de la lista de materiales de un paquete:
// referencia a un producto simple y la cantidad requerida por paquete (>= 1).
type BundleComponent struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Product representa una entrada del catálogo. CostPrice es el costo estándar
// usado al poblar líneas de recepción; el costo real de cada unidad física vive
// en InventoryItem. Components solo aplica cuando ProductType es "bundle" y su
// orden es significativo (se respeta al expandir el paquete). Los paquetes
// anidados no están soportados: cada componente debe referenciar un producto simple.
type Product struct {
	ID          string
	Name        string
	SKU         string
	Category    string
	CostPrice   decimal.Decimal
	ProductType string
	Components  []BundleComponent
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsBundle indica si el producto es un paquete con lista de materiales.
func (p *Product) IsBundle() bool {
	return p.ProductType == ProductTypeBundle
}

// TotalComponentUnits suma las cantidades declaradas de todos los componentes.
func (p *Product) TotalComponentUnits() int {
	total := 0
	for _, c := range p.Components {
		total += c.Quantity
	}
	return total
}
