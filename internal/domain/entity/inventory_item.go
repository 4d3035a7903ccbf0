package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una unidad física.
const (
	StatusInStock          = "in_stock"
	StatusDispatched       = "dispatched"
	StatusScrapped         = "scrapped"
	StatusDamagedOnArrival = "damaged_on_arrival"
)

// InventoryItem una unidad física con número de serie propio.
//
// Ciclo de vida: creada por Recepción (suelta o como parte de un paquete) →
// in_stock / damaged_on_arrival → dispatched (Despacho) o scrapped (Baja).
// Un despacho puede deshacerse: vuelve a in_stock y se limpian todos los
// campos de despacho. Los items nunca se eliminan en el flujo normal; quedan
// como historial para los reportes.
//
// Cuando la unidad entró como parte de un paquete lleva BundleGroupID (id
// opaco compartido por todas las unidades recibidas juntas como una instancia
// del paquete), BundleName (nombre mostrado capturado al recibir, desacoplado
// del nombre vivo del producto) y BundleProductID (id de la definición del
// paquete capturado al recibir; los datos migrados pueden traerlo vacío).
type InventoryItem struct {
	ID           string
	ProductID    string
	SerialNumber string // único, sin distinguir mayúsculas/minúsculas
	CostPrice    decimal.Decimal
	Status       string

	PurchaseDate   time.Time
	PurchaseReason string
	SupplierID     string // opcional
	// Cliente destino fijado al recibir (reclamaciones financieras). Opcional.
	DestinationClientID string

	// Campos de despacho: solo presentes cuando Status es dispatched.
	DispatchClientID  string
	DispatchDate      *time.Time
	DispatchReason    string
	DispatchReference string
	DispatchNotes     string

	ScrapDate       *time.Time // solo cuando Status es scrapped
	WarrantyEndDate *time.Time // opcional

	BundleGroupID   string
	BundleName      string
	BundleProductID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// InBundle indica si la unidad entró como parte de una instancia de paquete.
func (it *InventoryItem) InBundle() bool {
	return it.BundleGroupID != ""
}

// ClearDispatch limpia todos los campos de despacho (deshacer despacho).
func (it *InventoryItem) ClearDispatch() {
	it.DispatchClientID = ""
	it.DispatchDate = nil
	it.DispatchReason = ""
	it.DispatchReference = ""
	it.DispatchNotes = ""
}
