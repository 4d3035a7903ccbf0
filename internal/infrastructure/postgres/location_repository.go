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

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
// Tres tablas: provinces, areas (FK a provinces) y clients (FK a areas).
// Borrar un nivel con hijos viola la FK y se traduce a ErrConflict.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de la jerarquía de ubicaciones. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// ── Provincias ──────────────────────────────────────────────────────────────

// CreateProvince persiste una nueva provincia.
func (r *LocationRepo) CreateProvince(p *entity.Province) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO provinces (id, name, created_at) VALUES ($1, $2, $3)`,
		p.ID, p.Name, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert province: %w", err)
	}
	return nil
}

// GetProvince obtiene una provincia por ID.
func (r *LocationRepo) GetProvince(id string) (*entity.Province, error) {
	var p entity.Province
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, created_at FROM provinces WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get province: %w", err)
	}
	return &p, nil
}

// ListProvinces devuelve todas las provincias ordenadas por nombre.
func (r *LocationRepo) ListProvinces() ([]*entity.Province, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_at FROM provinces ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list provinces: %w", err)
	}
	defer rows.Close()

	var provinces []*entity.Province
	for rows.Next() {
		var p entity.Province
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan province: %w", err)
		}
		provinces = append(provinces, &p)
	}
	return provinces, rows.Err()
}

// DeleteProvince elimina una provincia sin áreas.
func (r *LocationRepo) DeleteProvince(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM provinces WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete province: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ── Áreas ───────────────────────────────────────────────────────────────────

// CreateArea persiste una nueva área.
func (r *LocationRepo) CreateArea(a *entity.Area) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO areas (id, province_id, name, created_at) VALUES ($1, $2, $3, $4)`,
		a.ID, a.ProvinceID, a.Name, a.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert area: %w", err)
	}
	return nil
}

// GetArea obtiene un área por ID.
func (r *LocationRepo) GetArea(id string) (*entity.Area, error) {
	var a entity.Area
	err := r.q.QueryRow(context.Background(),
		`SELECT id, province_id, name, created_at FROM areas WHERE id = $1`, id,
	).Scan(&a.ID, &a.ProvinceID, &a.Name, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get area: %w", err)
	}
	return &a, nil
}

// ListAreas devuelve las áreas, opcionalmente filtradas por provincia.
func (r *LocationRepo) ListAreas(provinceID string) ([]*entity.Area, error) {
	query := `SELECT id, province_id, name, created_at FROM areas`
	args := []any{}
	if provinceID != "" {
		query += ` WHERE province_id = $1`
		args = append(args, provinceID)
	}
	query += ` ORDER BY name, id`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}
	defer rows.Close()

	var areas []*entity.Area
	for rows.Next() {
		var a entity.Area
		if err := rows.Scan(&a.ID, &a.ProvinceID, &a.Name, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan area: %w", err)
		}
		areas = append(areas, &a)
	}
	return areas, rows.Err()
}

// DeleteArea elimina un área sin clientes.
func (r *LocationRepo) DeleteArea(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM areas WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete area: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ── Clientes ────────────────────────────────────────────────────────────────

// CreateClient persiste un nuevo cliente.
func (r *LocationRepo) CreateClient(c *entity.Client) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO clients (id, area_id, name, phone, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.AreaID, c.Name, c.Phone, c.Notes, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetClient obtiene un cliente por ID.
func (r *LocationRepo) GetClient(id string) (*entity.Client, error) {
	var c entity.Client
	err := r.q.QueryRow(context.Background(),
		`SELECT id, area_id, name, phone, notes, created_at, updated_at FROM clients WHERE id = $1`, id,
	).Scan(&c.ID, &c.AreaID, &c.Name, &c.Phone, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// UpdateClient actualiza un cliente existente.
func (r *LocationRepo) UpdateClient(c *entity.Client) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE clients SET area_id = $2, name = $3, phone = $4, notes = $5, updated_at = $6 WHERE id = $1`,
		c.ID, c.AreaID, c.Name, c.Phone, c.Notes, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListClients devuelve los clientes, opcionalmente filtrados por área.
func (r *LocationRepo) ListClients(areaID string) ([]*entity.Client, error) {
	query := `SELECT id, area_id, name, phone, notes, created_at, updated_at FROM clients`
	args := []any{}
	if areaID != "" {
		query += ` WHERE area_id = $1`
		args = append(args, areaID)
	}
	query += ` ORDER BY name, id`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var clients []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.AreaID, &c.Name, &c.Phone, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		clients = append(clients, &c)
	}
	return clients, rows.Err()
}

// DeleteClient elimina un cliente. Las unidades históricas conservan el id y
// los reportes muestran un marcador para ids huérfanos.
func (r *LocationRepo) DeleteClient(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
