package inventory

import (
	"context"

	"github.com/almakhzan/warehouse-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para recepciones de
// lotes/paquetes y para despachos de varias unidades.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		productRepo repository.ProductRepository,
	) error) error
}
