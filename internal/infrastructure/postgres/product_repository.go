package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/almakhzan/warehouse-api/internal/domain"
	"github.com/almakhzan/warehouse-api/internal/domain/entity"
	"github.com/almakhzan/warehouse-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
// La lista de materiales de un paquete se guarda como JSONB en la columna
// components, preservando el orden declarado.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia del catálogo. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto del catálogo.
func (r *ProductRepo) Create(product *entity.Product) error {
	components, err := marshalComponents(product.Components)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO products (id, name, sku, category, cost_price, product_type, components, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.SKU, product.Category,
		product.CostPrice, product.ProductType, components,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, sku, category, cost_price, product_type, components, created_at, updated_at
		FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `
		SELECT id, name, sku, category, cost_price, product_type, components, created_at, updated_at
		FROM products WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku))
}

// Update actualiza un producto existente. El tipo (simple/paquete) es inmutable
// tras la creación, por lo que product_type no se toca aquí.
func (r *ProductRepo) Update(product *entity.Product) error {
	components, err := marshalComponents(product.Components)
	if err != nil {
		return err
	}
	query := `
		UPDATE products SET name = $2, sku = $3, category = $4, cost_price = $5, components = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.SKU, product.Category,
		product.CostPrice, components, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve el catálogo completo, opcionalmente filtrado por categoría.
func (r *ProductRepo) List(category string) ([]*entity.Product, error) {
	query := `
		SELECT id, name, sku, category, cost_price, product_type, components, created_at, updated_at
		FROM products`
	args := []any{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY name, id`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		p, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Delete elimina un producto del catálogo. Las unidades históricas conservan
// solo el product_id; los reportes muestran un marcador para ids huérfanos.
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var components []byte
	err := row.Scan(
		&p.ID, &p.Name, &p.SKU, &p.Category, &p.CostPrice, &p.ProductType,
		&components, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	if len(components) > 0 {
		if err := json.Unmarshal(components, &p.Components); err != nil {
			return nil, fmt.Errorf("decode components: %w", err)
		}
	}
	return &p, nil
}

func marshalComponents(components []entity.BundleComponent) ([]byte, error) {
	if len(components) == 0 {
		return []byte(`[]`), nil
	}
	b, err := json.Marshal(components)
	if err != nil {
		return nil, fmt.Errorf("encode components: %w", err)
	}
	return b, nil
}
