package usecase

import (
	"github.com/almakhzan/warehouse-api/internal/application/dto"
	"github.com/almakhzan/warehouse-api/internal/domain"
	"github.com/almakhzan/warehouse-api/internal/domain/entity"
	"github.com/almakhzan/warehouse-api/internal/domain/repository"
)

// SettingsUseCase lectura y escritura de la configuración de negocio. Los
// consumidores (alertas, reportes) la leen en cada invocación: sin caché ni
// estado global.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get configuración vigente.
func (uc *SettingsUseCase) Get() (dto.SettingsDTO, error) {
	s, err := uc.repo.Get()
	if err != nil {
		return dto.SettingsDTO{}, err
	}
	return dto.SettingsDTO{
		CompanyName:       s.CompanyName,
		Currency:          s.Currency,
		LowStockThreshold: s.LowStockThreshold,
		WarrantyAlertDays: s.WarrantyAlertDays,
	}, nil
}

// Update reemplaza la configuración.
func (uc *SettingsUseCase) Update(in dto.SettingsDTO) error {
	if in.LowStockThreshold < 0 || in.WarrantyAlertDays < 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.Save(entity.Settings{
		CompanyName:       in.CompanyName,
		Currency:          in.Currency,
		LowStockThreshold: in.LowStockThreshold,
		WarrantyAlertDays: in.WarrantyAlertDays,
	})
}
