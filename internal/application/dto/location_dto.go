package dto

// CreateProvinceRequest alta de provincia.
type CreateProvinceRequest struct {
	Name string `json:"name"`
}

// CreateAreaRequest alta de área dentro de una provincia.
type CreateAreaRequest struct {
	ProvinceID string `json:"province_id"`
	Name       string `json:"name"`
}

// CreateClientRequest alta de cliente dentro de un área.
type CreateClientRequest struct {
	AreaID string `json:"area_id"`
	Name   string `json:"name"`
	Phone  string `json:"phone,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// CreateSupplierRequest alta de proveedor.
type CreateSupplierRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// CreateReasonRequest alta de motivo configurable.
type CreateReasonRequest struct {
	Kind  string `json:"kind"` // purchase | dispatch | scrap
	Label string `json:"label"`
}

// SettingsDTO configuración de negocio.
type SettingsDTO struct {
	CompanyName       string `json:"company_name"`
	Currency          string `json:"currency"`
	LowStockThreshold int    `json:"low_stock_threshold"`
	WarrantyAlertDays int    `json:"warranty_alert_days"`
}
