// Package bundle contiene la lógica pura de paquetes: expansión de la lista
// de materiales en líneas individuales y verificación de completitud de
// instancias recibidas. Todo opera sobre un snapshot del catálogo en memoria,
// sin efectos secundarios.
package bundle

import "github.com/almakhzan/warehouse-api/internal/domain/entity"

// Catalog puerto de consulta del catálogo. Las búsquedas deben ser O(1)
// (pre-indexadas): se invocan una vez por item durante agregación y
// verificación. Devuelven nil cuando el id/nombre no resuelve.
type Catalog interface {
	ProductByID(id string) *entity.Product
	// BundleByName busca un producto cuyo nombre coincida exactamente y cuyo
	// tipo sea bundle. Respaldo histórico para instancias sin BundleProductID.
	BundleByName(name string) *entity.Product
}

// Snapshot implementación de Catalog sobre un slice de productos, indexada
// en construcción.
type Snapshot struct {
	byID         map[string]*entity.Product
	bundleByName map[string]*entity.Product
}

var _ Catalog = (*Snapshot)(nil)

// NewSnapshot indexa los productos por id y los paquetes por nombre.
func NewSnapshot(products []*entity.Product) *Snapshot {
	s := &Snapshot{
		byID:         make(map[string]*entity.Product, len(products)),
		bundleByName: make(map[string]*entity.Product),
	}
	for _, p := range products {
		s.byID[p.ID] = p
		if p.IsBundle() {
			s.bundleByName[p.Name] = p
		}
	}
	return s
}

// ProductByID devuelve el producto o nil.
func (s *Snapshot) ProductByID(id string) *entity.Product {
	return s.byID[id]
}

// BundleByName devuelve el paquete con ese nombre exacto o nil.
func (s *Snapshot) BundleByName(name string) *entity.Product {
	return s.bundleByName[name]
}
