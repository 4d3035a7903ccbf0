package repository

import "github.com/almakhzan/warehouse-api/internal/domain/entity"

// UserRepository puerto de persistencia de cuentas de operador.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(u *entity.User) error
	List() ([]*entity.User, error)
}
