package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BundleComponentDTO línea de la lista de materiales en requests/responses.
type BundleComponentDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateProductRequest alta de producto. Components solo aplica cuando
// product_type es "bundle".
type CreateProductRequest struct {
	Name        string               `json:"name"`
	SKU         string               `json:"sku"`
	Category    string               `json:"category"`
	CostPrice   decimal.Decimal      `json:"cost_price"`
	ProductType string               `json:"product_type"`
	Components  []BundleComponentDTO `json:"components,omitempty"`
}

// UpdateProductRequest edición de producto. La lista de materiales puede
// editarse; las verificaciones de completitud leen siempre la definición
// vigente, así que el cambio aplica retroactivamente a instancias históricas.
type UpdateProductRequest struct {
	Name       string               `json:"name"`
	SKU        string               `json:"sku"`
	Category   string               `json:"category"`
	CostPrice  decimal.Decimal      `json:"cost_price"`
	Components []BundleComponentDTO `json:"components,omitempty"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	SKU         string               `json:"sku"`
	Category    string               `json:"category"`
	CostPrice   decimal.Decimal      `json:"cost_price"`
	ProductType string               `json:"product_type"`
	Components  []BundleComponentDTO `json:"components,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}
