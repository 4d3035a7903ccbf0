package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/almakhzan/warehouse-api/internal/domain"
	"github.com/almakhzan/warehouse-api/internal/domain/entity"
	"github.com/almakhzan/warehouse-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación del puerto SettingsRepository sobre PostgreSQL.
// La tabla settings tiene una sola fila con id fijo.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador de configuración. Pasar pool o tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get lee la fila de configuración. Devuelve ErrNotFound si todavía no existe
// (el arranque la siembra desde la configuración de entorno).
func (r *SettingsRepo) Get() (entity.Settings, error) {
	var s entity.Settings
	err := r.q.QueryRow(context.Background(),
		`SELECT company_name, currency, low_stock_threshold, warranty_alert_days FROM settings WHERE id = 1`,
	).Scan(&s.CompanyName, &s.Currency, &s.LowStockThreshold, &s.WarrantyAlertDays)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Settings{}, domain.ErrNotFound
		}
		return entity.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return s, nil
}

// Save escribe la fila de configuración (upsert sobre el id fijo).
func (r *SettingsRepo) Save(s entity.Settings) error {
	query := `
		INSERT INTO settings (id, company_name, currency, low_stock_threshold, warranty_alert_days)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			currency = EXCLUDED.currency,
			low_stock_threshold = EXCLUDED.low_stock_threshold,
			warranty_alert_days = EXCLUDED.warranty_alert_days`
	_, err := r.q.Exec(context.Background(), query,
		s.CompanyName, s.Currency, s.LowStockThreshold, s.WarrantyAlertDays,
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
