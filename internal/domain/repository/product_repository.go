package repository

import "github.com/almakhzan/warehouse-api/internal/domain/entity"

// ProductRepository puerto de persistencia del catálogo.
// Los métodos Get* devuelven (nil, nil) cuando el recurso no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	// List devuelve el catálogo completo (o filtrado por categoría si
	// category no es vacío). El catálogo es pequeño; los casos de uso de
	// reportes lo cargan entero para indexarlo en memoria.
	List(category string) ([]*entity.Product, error)
	Delete(id string) error
}
