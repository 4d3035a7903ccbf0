package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiveLineRequest una unidad individual a recibir.
type ReceiveLineRequest struct {
	ProductID        string          `json:"product_id"`
	SerialNumber     string          `json:"serial_number"`
	CostPrice        decimal.Decimal `json:"cost_price"`
	DamagedOnArrival bool            `json:"damaged_on_arrival,omitempty"`
	WarrantyEndDate  *time.Time      `json:"warranty_end_date,omitempty"`
}

// ReceiveBatchRequest recepción de un lote de unidades sueltas con datos
// comunes de compra.
type ReceiveBatchRequest struct {
	Lines               []ReceiveLineRequest `json:"lines"`
	PurchaseDate        time.Time            `json:"purchase_date"`
	PurchaseReason      string               `json:"purchase_reason"`
	SupplierID          string               `json:"supplier_id,omitempty"`
	DestinationClientID string               `json:"destination_client_id,omitempty"`
}

// ReceiveBundleRequest recepción de bundle_count instancias de un paquete.
// Serials debe traer exactamente una entrada por unidad expandida, en el
// mismo orden de la expansión (repetición → componente → unidad).
type ReceiveBundleRequest struct {
	BundleProductID     string     `json:"bundle_product_id"`
	BundleCount         int        `json:"bundle_count"`
	Serials             []string   `json:"serials"`
	PurchaseDate        time.Time  `json:"purchase_date"`
	PurchaseReason      string     `json:"purchase_reason"`
	SupplierID          string     `json:"supplier_id,omitempty"`
	DestinationClientID string     `json:"destination_client_id,omitempty"`
	WarrantyEndDate     *time.Time `json:"warranty_end_date,omitempty"`
}

// DispatchRequest despacho de unidades en stock hacia un cliente.
type DispatchRequest struct {
	ItemIDs   []string  `json:"item_ids"`
	ClientID  string    `json:"client_id"`
	Date      time.Time `json:"date"`
	Reason    string    `json:"reason"`
	Reference string    `json:"reference,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}

// ScrapRequest baja de unidades en stock.
type ScrapRequest struct {
	ItemIDs []string  `json:"item_ids"`
	Date    time.Time `json:"date"`
}

// ItemListRequest filtros del listado de unidades desde query params.
type ItemListRequest struct {
	Status        string `query:"status"`
	ProductID     string `query:"product_id"`
	Category      string `query:"category"`
	SupplierID    string `query:"supplier_id"`
	ClientID      string `query:"client_id"`
	BundleGroupID string `query:"bundle_group_id"`
}

// ItemResponse unidad física en respuestas.
type ItemResponse struct {
	ID                  string          `json:"id"`
	ProductID           string          `json:"product_id"`
	SerialNumber        string          `json:"serial_number"`
	CostPrice           decimal.Decimal `json:"cost_price"`
	Status              string          `json:"status"`
	PurchaseDate        time.Time       `json:"purchase_date"`
	PurchaseReason      string          `json:"purchase_reason,omitempty"`
	SupplierID          string          `json:"supplier_id,omitempty"`
	DestinationClientID string          `json:"destination_client_id,omitempty"`
	DispatchClientID    string          `json:"dispatch_client_id,omitempty"`
	DispatchDate        *time.Time      `json:"dispatch_date,omitempty"`
	DispatchReason      string          `json:"dispatch_reason,omitempty"`
	DispatchReference   string          `json:"dispatch_reference,omitempty"`
	DispatchNotes       string          `json:"dispatch_notes,omitempty"`
	ScrapDate           *time.Time      `json:"scrap_date,omitempty"`
	WarrantyEndDate     *time.Time      `json:"warranty_end_date,omitempty"`
	BundleGroupID       string          `json:"bundle_group_id,omitempty"`
	BundleName          string          `json:"bundle_name,omitempty"`
}

// LowStockAlertDTO producto por debajo del umbral de stock bajo.
type LowStockAlertDTO struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	SKU         string `json:"sku"`
	InStock     int    `json:"in_stock"`
	Threshold   int    `json:"threshold"`
}

// WarrantyAlertDTO unidad cuya garantía vence dentro de la ventana configurada.
type WarrantyAlertDTO struct {
	ItemID          string    `json:"item_id"`
	SerialNumber    string    `json:"serial_number"`
	ProductName     string    `json:"product_name"`
	WarrantyEndDate time.Time `json:"warranty_end_date"`
	DaysLeft        int       `json:"days_left"`
}
