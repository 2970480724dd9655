package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bizcore/erp-api/internal/core/domain"
)

// Product reads join users so each row carries its creator's name, the
// way the listing presents it.
const productColumns = `p.id, p.product_name, p.product_code, p.product_category, p.unit,
	p.critical_stock_level, p.current_stock, p.brand, p.is_active, p.created_by, u.name,
	p.created_at, p.updated_at`

const productFrom = ` FROM products p LEFT JOIN users u ON u.id = p.created_by`

// ProductRepository persists products. The deletion policy here is soft:
// Deactivate clears is_active and the row stays in place, so FindByID
// keeps resolving deactivated products and the audit trail stays joined
// to a live row.
type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	var createdBy any
	if p.CreatedBy != 0 {
		createdBy = p.CreatedBy
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO products (product_name, product_code, product_category, unit,
			critical_stock_level, current_stock, brand, is_active, created_by, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ProductName, p.ProductCode, p.ProductCategory, p.Unit,
		p.CriticalStockLevel, p.CurrentStock, p.Brand, p.IsActive, createdBy, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateProductCode
		}
		return nil, fmt.Errorf("insert product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert product id: %w", err)
	}
	return r.FindByID(ctx, id)
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	return scanProduct(r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+productFrom+` WHERE p.id = ?`, id))
}

func (r *ProductRepository) FindByCode(ctx context.Context, code string) (*domain.Product, error) {
	return scanProduct(r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+productFrom+` WHERE p.product_code = ?`, code))
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	return r.queryProducts(ctx,
		`SELECT `+productColumns+productFrom+` ORDER BY p.created_at DESC`)
}

// ListLowStock returns active products at or below their alert threshold.
func (r *ProductRepository) ListLowStock(ctx context.Context) ([]domain.Product, error) {
	return r.queryProducts(ctx,
		`SELECT `+productColumns+productFrom+`
		 WHERE p.is_active = 1 AND p.current_stock <= p.critical_stock_level
		 ORDER BY p.critical_stock_level ASC`)
}

func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	return r.queryStrings(ctx,
		`SELECT DISTINCT product_category FROM products
		 WHERE product_category <> '' ORDER BY product_category`)
}

func (r *ProductRepository) Brands(ctx context.Context) ([]string, error) {
	return r.queryStrings(ctx,
		`SELECT DISTINCT brand FROM products WHERE brand <> '' ORDER BY brand`)
}

func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	_, err := r.db.ExecContext(ctx,
		`UPDATE products SET product_name = ?, product_code = ?, product_category = ?,
			unit = ?, critical_stock_level = ?, current_stock = ?, brand = ?, updated_at = ?
		 WHERE id = ?`,
		p.ProductName, p.ProductCode, p.ProductCategory,
		p.Unit, p.CriticalStockLevel, p.CurrentStock, p.Brand, p.UpdatedAt, p.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateProductCode
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return r.FindByID(ctx, p.ID)
}

func (r *ProductRepository) Deactivate(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET is_active = 0, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) queryProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProductRow(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) queryStrings(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query strings: %w", err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row *sql.Row) (*domain.Product, error) {
	p, err := scanProductRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func scanProductRow(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	var createdBy sql.NullInt64
	var createdByName sql.NullString
	err := row.Scan(&p.ID, &p.ProductName, &p.ProductCode, &p.ProductCategory, &p.Unit,
		&p.CriticalStockLevel, &p.CurrentStock, &p.Brand, &p.IsActive, &createdBy,
		&createdByName, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if createdBy.Valid {
		p.CreatedBy = createdBy.Int64
	}
	if createdByName.Valid {
		p.CreatedByName = createdByName.String
	}
	return &p, nil
}
