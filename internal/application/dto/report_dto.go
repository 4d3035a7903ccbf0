package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportFilterRequest filtros de reporte desde query params. Los campos
// ausentes no filtran.
type ReportFilterRequest struct {
	From       string `query:"from"`        // YYYY-MM-DD
	To         string `query:"to"`          // YYYY-MM-DD
	SupplierID string `query:"supplier_id"`
	Category   string `query:"category"`
	Status     string `query:"status"`
	ClientID   string `query:"client_id"`
	AreaID     string `query:"area_id"`
	ProvinceID string `query:"province_id"`
	SortColumn string `query:"sort"` // date|product|sku|counterparty|reason|unit_price|quantity|total|note
	SortDesc   bool   `query:"desc"`
}

// ReportRowDTO fila agregada en respuestas.
type ReportRowDTO struct {
	ProductName  string          `json:"product_name"`
	SKU          string          `json:"sku,omitempty"`
	Counterparty string          `json:"counterparty"`
	Reason       string          `json:"reason"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Quantity     int             `json:"quantity"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	Date         time.Time       `json:"date"`
	Note         string          `json:"note,omitempty"`
	Bundle       bool            `json:"bundle,omitempty"`
}

// ReportResponse reporte completo: filas ordenadas + suma general.
type ReportResponse struct {
	Title      string          `json:"title"`
	Rows       []ReportRowDTO  `json:"rows"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	Currency   string          `json:"currency"`
}
