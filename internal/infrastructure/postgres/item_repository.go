package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/almakhzan/warehouse-api/internal/domain"
	"github.com/almakhzan/warehouse-api/internal/domain/entity"
	"github.com/almakhzan/warehouse-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `
	i.id, i.product_id, i.serial_number, i.cost_price, i.status,
	i.purchase_date, COALESCE(i.purchase_reason, ''), COALESCE(i.supplier_id, ''), COALESCE(i.destination_client_id, ''),
	COALESCE(i.dispatch_client_id, ''), i.dispatch_date, COALESCE(i.dispatch_reason, ''), COALESCE(i.dispatch_reference, ''), COALESCE(i.dispatch_notes, ''),
	i.scrap_date, i.warranty_end_date,
	COALESCE(i.bundle_group_id, ''), COALESCE(i.bundle_name, ''), COALESCE(i.bundle_product_id, ''),
	i.created_at, i.updated_at`

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
// La columna serial_normalized guarda el serie tras case folding y lleva el
// índice único; serial_number conserva la forma original para mostrar.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia de unidades. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste una nueva unidad física.
func (r *ItemRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO items (
			id, product_id, serial_number, serial_normalized, cost_price, status,
			purchase_date, purchase_reason, supplier_id, destination_client_id,
			dispatch_client_id, dispatch_date, dispatch_reason, dispatch_reference, dispatch_notes,
			scrap_date, warranty_end_date,
			bundle_group_id, bundle_name, bundle_product_id,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ProductID, item.SerialNumber, entity.NormalizeSerial(item.SerialNumber),
		item.CostPrice, item.Status,
		item.PurchaseDate, nullIfEmpty(item.PurchaseReason), nullIfEmpty(item.SupplierID), nullIfEmpty(item.DestinationClientID),
		nullIfEmpty(item.DispatchClientID), item.DispatchDate, nullIfEmpty(item.DispatchReason),
		nullIfEmpty(item.DispatchReference), nullIfEmpty(item.DispatchNotes),
		item.ScrapDate, item.WarrantyEndDate,
		nullIfEmpty(item.BundleGroupID), nullIfEmpty(item.BundleName), nullIfEmpty(item.BundleProductID),
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSerial
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene una unidad por ID.
func (r *ItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM items i WHERE i.id = $1`
	return scanItemRow(r.q.QueryRow(context.Background(), query, id))
}

// GetBySerial busca por número de serie normalizado.
func (r *ItemRepo) GetBySerial(normalizedSerial string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM items i WHERE i.serial_normalized = $1`
	return scanItemRow(r.q.QueryRow(context.Background(), query, normalizedSerial))
}

// Update actualiza una unidad existente (transiciones de estado, edición de campos).
func (r *ItemRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE items SET
			product_id = $2, serial_number = $3, serial_normalized = $4, cost_price = $5, status = $6,
			purchase_date = $7, purchase_reason = $8, supplier_id = $9, destination_client_id = $10,
			dispatch_client_id = $11, dispatch_date = $12, dispatch_reason = $13, dispatch_reference = $14, dispatch_notes = $15,
			scrap_date = $16, warranty_end_date = $17,
			bundle_group_id = $18, bundle_name = $19, bundle_product_id = $20,
			updated_at = $21
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		item.ID, item.ProductID, item.SerialNumber, entity.NormalizeSerial(item.SerialNumber),
		item.CostPrice, item.Status,
		item.PurchaseDate, nullIfEmpty(item.PurchaseReason), nullIfEmpty(item.SupplierID), nullIfEmpty(item.DestinationClientID),
		nullIfEmpty(item.DispatchClientID), item.DispatchDate, nullIfEmpty(item.DispatchReason),
		nullIfEmpty(item.DispatchReference), nullIfEmpty(item.DispatchNotes),
		item.ScrapDate, item.WarrantyEndDate,
		nullIfEmpty(item.BundleGroupID), nullIfEmpty(item.BundleName), nullIfEmpty(item.BundleProductID),
		item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSerial
		}
		return fmt.Errorf("update item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve las unidades que cumplen el filtro, en orden estable por fecha
// de compra y luego por orden de inserción.
func (r *ItemRepo) List(filter repository.ItemFilter) ([]entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM items i`
	where, args := buildItemWhere(filter)
	if filter.Category != "" {
		query += ` LEFT JOIN products p ON p.id = i.product_id`
	}
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY i.purchase_date, i.created_at, i.id`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []entity.InventoryItem
	for rows.Next() {
		it, err := scanItemRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

// CountInStockByProduct agrupa las unidades en stock por producto.
func (r *ItemRepo) CountInStockByProduct() ([]repository.LowStockCount, error) {
	query := `
		SELECT product_id, COUNT(*)
		FROM items WHERE status = $1
		GROUP BY product_id`
	rows, err := r.q.Query(context.Background(), query, entity.StatusInStock)
	if err != nil {
		return nil, fmt.Errorf("count stock: %w", err)
	}
	defer rows.Close()

	var counts []repository.LowStockCount
	for rows.Next() {
		var c repository.LowStockCount
		if err := rows.Scan(&c.ProductID, &c.Count); err != nil {
			return nil, fmt.Errorf("scan stock count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// ListWarrantyEnding devuelve las unidades en stock cuya garantía vence dentro
// de la ventana [now, until].
func (r *ItemRepo) ListWarrantyEnding(now, until time.Time) ([]entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM items i
		WHERE i.status = $1 AND i.warranty_end_date IS NOT NULL
		  AND i.warranty_end_date >= $2 AND i.warranty_end_date <= $3
		ORDER BY i.warranty_end_date, i.id`
	rows, err := r.q.Query(context.Background(), query, entity.StatusInStock, now, until)
	if err != nil {
		return nil, fmt.Errorf("list warranty ending: %w", err)
	}
	defer rows.Close()

	var items []entity.InventoryItem
	for rows.Next() {
		it, err := scanItemRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

// buildItemWhere traduce el filtro a condiciones SQL parametrizadas.
func buildItemWhere(f repository.ItemFilter) ([]string, []any) {
	var where []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(f.Statuses) > 0 {
		where = append(where, fmt.Sprintf("i.status = ANY(%s)", arg(f.Statuses)))
	}
	if f.ProductID != "" {
		where = append(where, fmt.Sprintf("i.product_id = %s", arg(f.ProductID)))
	}
	if f.Category != "" {
		where = append(where, fmt.Sprintf("p.category = %s", arg(f.Category)))
	}
	if f.SupplierID != "" {
		where = append(where, fmt.Sprintf("i.supplier_id = %s", arg(f.SupplierID)))
	}
	if f.PurchasedFrom != nil {
		where = append(where, fmt.Sprintf("i.purchase_date >= %s", arg(*f.PurchasedFrom)))
	}
	if f.PurchasedTo != nil {
		where = append(where, fmt.Sprintf("i.purchase_date <= %s", arg(*f.PurchasedTo)))
	}
	if f.DispatchedFrom != nil {
		where = append(where, fmt.Sprintf("i.dispatch_date >= %s", arg(*f.DispatchedFrom)))
	}
	if f.DispatchedTo != nil {
		where = append(where, fmt.Sprintf("i.dispatch_date <= %s", arg(*f.DispatchedTo)))
	}
	if f.DispatchClientID != "" {
		where = append(where, fmt.Sprintf("i.dispatch_client_id = %s", arg(f.DispatchClientID)))
	}
	if f.DestinationID != "" {
		where = append(where, fmt.Sprintf("i.destination_client_id = %s", arg(f.DestinationID)))
	}
	if f.ClientID != "" {
		p := arg(f.ClientID)
		where = append(where, fmt.Sprintf("(i.destination_client_id = %s OR i.dispatch_client_id = %s)", p, p))
	}
	if f.AreaID != "" {
		p := arg(f.AreaID)
		where = append(where, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM clients c
			WHERE c.id IN (i.destination_client_id, i.dispatch_client_id) AND c.area_id = %s)`, p))
	}
	if f.ProvinceID != "" {
		p := arg(f.ProvinceID)
		where = append(where, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM clients c
			JOIN areas a ON a.id = c.area_id
			WHERE c.id IN (i.destination_client_id, i.dispatch_client_id) AND a.province_id = %s)`, p))
	}
	if f.BundleGroupID != "" {
		where = append(where, fmt.Sprintf("i.bundle_group_id = %s", arg(f.BundleGroupID)))
	}
	return where, args
}

func scanItemRow(row pgx.Row) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := row.Scan(
		&it.ID, &it.ProductID, &it.SerialNumber, &it.CostPrice, &it.Status,
		&it.PurchaseDate, &it.PurchaseReason, &it.SupplierID, &it.DestinationClientID,
		&it.DispatchClientID, &it.DispatchDate, &it.DispatchReason, &it.DispatchReference, &it.DispatchNotes,
		&it.ScrapDate, &it.WarrantyEndDate,
		&it.BundleGroupID, &it.BundleName, &it.BundleProductID,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}
	return &it, nil
}
