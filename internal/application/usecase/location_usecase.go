package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/almakhzan/warehouse-api/internal/application/dto"
	"github.com/almakhzan/warehouse-api/internal/domain"
	"github.com/almakhzan/warehouse-api/internal/domain/entity"
	"github.com/almakhzan/warehouse-api/internal/domain/repository"
)

// LocationUseCase administra la jerarquía provincia → área → cliente con
// contención referencial: un área exige provincia existente y un cliente
// exige área existente.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// CreateProvince alta de provincia.
func (uc *LocationUseCase) CreateProvince(in dto.CreateProvinceRequest) (*entity.Province, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.Province{ID: uuid.New().String(), Name: in.Name, CreatedAt: time.Now()}
	if err := uc.repo.CreateProvince(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListProvinces todas las provincias.
func (uc *LocationUseCase) ListProvinces() ([]*entity.Province, error) {
	return uc.repo.ListProvinces()
}

// CreateArea alta de área; la provincia debe existir.
func (uc *LocationUseCase) CreateArea(in dto.CreateAreaRequest) (*entity.Area, error) {
	if in.Name == "" || in.ProvinceID == "" {
		return nil, domain.ErrInvalidInput
	}
	province, err := uc.repo.GetProvince(in.ProvinceID)
	if err != nil {
		return nil, err
	}
	if province == nil {
		return nil, domain.ErrAreaNotInProvince
	}
	a := &entity.Area{ID: uuid.New().String(), ProvinceID: in.ProvinceID, Name: in.Name, CreatedAt: time.Now()}
	if err := uc.repo.CreateArea(a); err != nil {
		return nil, err
	}
	return a, nil
}

// ListAreas áreas, opcionalmente de una provincia.
func (uc *LocationUseCase) ListAreas(provinceID string) ([]*entity.Area, error) {
	return uc.repo.ListAreas(provinceID)
}

// CreateClient alta de cliente; el área debe existir.
func (uc *LocationUseCase) CreateClient(in dto.CreateClientRequest) (*entity.Client, error) {
	if in.Name == "" || in.AreaID == "" {
		return nil, domain.ErrInvalidInput
	}
	area, err := uc.repo.GetArea(in.AreaID)
	if err != nil {
		return nil, err
	}
	if area == nil {
		return nil, domain.ErrClientNotInArea
	}
	now := time.Now()
	c := &entity.Client{
		ID:        uuid.New().String(),
		AreaID:    in.AreaID,
		Name:      in.Name,
		Phone:     in.Phone,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.CreateClient(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListClients clientes, opcionalmente de un área.
func (uc *LocationUseCase) ListClients(areaID string) ([]*entity.Client, error) {
	return uc.repo.ListClients(areaID)
}

// UpdateClient edición de cliente; si cambia de área, el área destino debe existir.
func (uc *LocationUseCase) UpdateClient(id string, in dto.CreateClientRequest) (*entity.Client, error) {
	if in.Name == "" || in.AreaID == "" {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.repo.GetClient(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.AreaID != c.AreaID {
		area, err := uc.repo.GetArea(in.AreaID)
		if err != nil {
			return nil, err
		}
		if area == nil {
			return nil, domain.ErrClientNotInArea
		}
	}
	c.AreaID = in.AreaID
	c.Name = in.Name
	c.Phone = in.Phone
	c.Notes = in.Notes
	c.UpdatedAt = time.Now()
	if err := uc.repo.UpdateClient(c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteProvince baja de provincia sin áreas.
func (uc *LocationUseCase) DeleteProvince(id string) error {
	return uc.repo.DeleteProvince(id)
}

// DeleteArea baja de área sin clientes.
func (uc *LocationUseCase) DeleteArea(id string) error {
	return uc.repo.DeleteArea(id)
}

// DeleteClient baja de cliente; el historial de unidades conserva el id.
func (uc *LocationUseCase) DeleteClient(id string) error {
	return uc.repo.DeleteClient(id)
}
