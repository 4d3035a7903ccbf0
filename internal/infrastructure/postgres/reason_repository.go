package postgres

import (
	"context"
	"fmt"

	"github.com/almakhzan/warehouse-api/internal/domain"
	"github.com/almakhzan/warehouse-api/internal/domain/entity"
	"github.com/almakhzan/warehouse-api/internal/domain/repository"
)

var _ repository.ReasonRepository = (*ReasonRepo)(nil)

// ReasonRepo implementación del puerto ReasonRepository sobre PostgreSQL.
type ReasonRepo struct {
	q Querier
}

// NewReasonRepository construye el adaptador de motivos. Pasar pool o tx (Querier).
func NewReasonRepository(q Querier) *ReasonRepo {
	return &ReasonRepo{q: q}
}

// Create persiste un nuevo motivo.
func (r *ReasonRepo) Create(reason *entity.Reason) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO reasons (id, kind, label, created_at) VALUES ($1, $2, $3, $4)`,
		reason.ID, reason.Kind, reason.Label, reason.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert reason: %w", err)
	}
	return nil
}

// List devuelve los motivos, opcionalmente filtrados por tipo, ordenados por etiqueta.
func (r *ReasonRepo) List(kind string) ([]*entity.Reason, error) {
	query := `SELECT id, kind, label, created_at FROM reasons`
	args := []any{}
	if kind != "" {
		query += ` WHERE kind = $1`
		args = append(args, kind)
	}
	query += ` ORDER BY label, id`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reasons: %w", err)
	}
	defer rows.Close()

	var reasons []*entity.Reason
	for rows.Next() {
		var reason entity.Reason
		if err := rows.Scan(&reason.ID, &reason.Kind, &reason.Label, &reason.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reason: %w", err)
		}
		reasons = append(reasons, &reason)
	}
	return reasons, rows.Err()
}

// Delete elimina un motivo. Las unidades conservan el texto del motivo, así que
// borrar de la lista no afecta el historial.
func (r *ReasonRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM reasons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reason: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
