package repository

import "github.com/almakhzan/warehouse-api/internal/domain/entity"

// SettingsRepository puerto de la configuración de negocio (fila única).
type SettingsRepository interface {
	Get() (entity.Settings, error)
	Save(s entity.Settings) error
}
