package repository

import "github.com/almakhzan/warehouse-api/internal/domain/entity"

// LocationRepository puerto de la jerarquía provincia → área → cliente.
type LocationRepository interface {
	CreateProvince(p *entity.Province) error
	GetProvince(id string) (*entity.Province, error)
	ListProvinces() ([]*entity.Province, error)
	DeleteProvince(id string) error

	CreateArea(a *entity.Area) error
	GetArea(id string) (*entity.Area, error)
	ListAreas(provinceID string) ([]*entity.Area, error)
	DeleteArea(id string) error

	CreateClient(c *entity.Client) error
	GetClient(id string) (*entity.Client, error)
	UpdateClient(c *entity.Client) error
	ListClients(areaID string) ([]*entity.Client, error)
	DeleteClient(id string) error
}
