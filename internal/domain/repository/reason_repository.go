package repository

import "github.com/almakhzan/warehouse-api/internal/domain/entity"

// ReasonRepository puerto de los motivos configurables de compra/despacho/baja.
type ReasonRepository interface {
	Create(r *entity.Reason) error
	List(kind string) ([]*entity.Reason, error)
	Delete(id string) error
}
