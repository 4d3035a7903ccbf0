package repository

import (
	"time"

	"github.com/almakhzan/warehouse-api/internal/domain/entity"
)

// ItemFilter criterios de consulta de unidades para reportes y listados.
// Todos los campos son opcionales; el repositorio combina los presentes con
// AND. El filtrado ocurre siempre antes de invocar el agregador: el núcleo de
// reportes recibe slices ya filtrados.
type ItemFilter struct {
	Statuses         []string
	ProductID        string
	Category         string // categoría del producto (join con catálogo)
	SupplierID       string
	PurchasedFrom    *time.Time
	PurchasedTo      *time.Time
	DispatchedFrom   *time.Time
	DispatchedTo     *time.Time
	DispatchClientID string
	DestinationID    string // cliente destino fijado al recibir
	ClientID         string // cualquiera de los dos clientes, vía jerarquía
	AreaID           string
	ProvinceID       string
	BundleGroupID    string
}

// LowStockCount conteo de unidades en stock por producto.
type LowStockCount struct {
	ProductID string
	Count     int
}

// ItemRepository puerto de persistencia de unidades físicas.
type ItemRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	// GetBySerial busca por número de serie normalizado (case folding).
	GetBySerial(normalizedSerial string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	List(filter ItemFilter) ([]entity.InventoryItem, error)
	// CountInStockByProduct agrupa las unidades in_stock por producto
	// (alerta de stock bajo).
	CountInStockByProduct() ([]LowStockCount, error)
	// ListWarrantyEnding unidades en stock cuya garantía vence dentro de la
	// ventana [now, until].
	ListWarrantyEnding(now, until time.Time) ([]entity.InventoryItem, error)
}
