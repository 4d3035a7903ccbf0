package entity

// Settings configuración de negocio del almacén. Se inyecta explícitamente en
// los casos de uso que la necesitan (nada de estado global): umbral de stock
// bajo, ventana de alerta de garantía, moneda y nombre de la empresa.
type Settings struct {
	CompanyName       string
	Currency          string
	LowStockThreshold int
	WarrantyAlertDays int
}
