package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bizcore/erp-api/internal/core/domain"
	"github.com/bizcore/erp-api/internal/core/ports"
)

// FixedCostRepository persists monthly overhead entries. Deletion is hard.
type FixedCostRepository struct {
	db *sql.DB
}

func NewFixedCostRepository(db *sql.DB) *FixedCostRepository {
	return &FixedCostRepository{db: db}
}

func (r *FixedCostRepository) Create(ctx context.Context, fc *domain.FixedCost) (*domain.FixedCost, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO fixed_costs (cost_name, month, amount, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		fc.CostName, fc.Month, fc.Amount, fc.CreatedAt, fc.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert fixed cost: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert fixed cost id: %w", err)
	}
	return r.FindByID(ctx, id)
}

func (r *FixedCostRepository) FindByID(ctx context.Context, id int64) (*domain.FixedCost, error) {
	var fc domain.FixedCost
	err := r.db.QueryRowContext(ctx,
		`SELECT id, cost_name, month, amount, created_at, updated_at
		 FROM fixed_costs WHERE id = ?`, id).
		Scan(&fc.ID, &fc.CostName, &fc.Month, &fc.Amount, &fc.CreatedAt, &fc.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFixedCostNotFound
		}
		return nil, fmt.Errorf("scan fixed cost: %w", err)
	}
	return &fc, nil
}

func (r *FixedCostRepository) List(ctx context.Context, month string) ([]domain.FixedCost, error) {
	query := `SELECT id, cost_name, month, amount, created_at, updated_at
		 FROM fixed_costs`
	var args []any
	if month != "" {
		query += ` WHERE month = ?`
		args = append(args, month)
	}
	query += ` ORDER BY month DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query fixed costs: %w", err)
	}
	defer rows.Close()

	var costs []domain.FixedCost
	for rows.Next() {
		var fc domain.FixedCost
		if err := rows.Scan(&fc.ID, &fc.CostName, &fc.Month, &fc.Amount, &fc.CreatedAt, &fc.UpdatedAt); err != nil {
			return nil, err
		}
		costs = append(costs, fc)
	}
	return costs, rows.Err()
}

func (r *FixedCostRepository) Update(ctx context.Context, fc *domain.FixedCost) (*domain.FixedCost, error) {
	_, err := r.db.ExecContext(ctx,
		`UPDATE fixed_costs SET cost_name = ?, month = ?, amount = ?, updated_at = ?
		 WHERE id = ?`,
		fc.CostName, fc.Month, fc.Amount, fc.UpdatedAt, fc.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update fixed cost: %w", err)
	}
	return r.FindByID(ctx, fc.ID)
}

func (r *FixedCostRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM fixed_costs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete fixed cost: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrFixedCostNotFound
	}
	return nil
}

// ProductCostRepository persists per-unit monthly costs. Deletion is
// hard; product_id is enforced by a foreign key.
type ProductCostRepository struct {
	db *sql.DB
}

func NewProductCostRepository(db *sql.DB) *ProductCostRepository {
	return &ProductCostRepository{db: db}
}

func (r *ProductCostRepository) Create(ctx context.Context, pc *domain.ProductCost) (*domain.ProductCost, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO product_costs (product_id, month, unit_cost, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		pc.ProductID, pc.Month, pc.UnitCost, pc.CreatedAt, pc.UpdatedAt,
	)
	if err != nil {
		if isFKViolation(err) {
			return nil, domain.ErrProductReference
		}
		return nil, fmt.Errorf("insert product cost: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert product cost id: %w", err)
	}
	return r.FindByID(ctx, id)
}

func (r *ProductCostRepository) FindByID(ctx context.Context, id int64) (*domain.ProductCost, error) {
	var pc domain.ProductCost
	err := r.db.QueryRowContext(ctx,
		`SELECT id, product_id, month, unit_cost, created_at, updated_at
		 FROM product_costs WHERE id = ?`, id).
		Scan(&pc.ID, &pc.ProductID, &pc.Month, &pc.UnitCost, &pc.CreatedAt, &pc.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductCostNotFound
		}
		return nil, fmt.Errorf("scan product cost: %w", err)
	}
	return &pc, nil
}

func (r *ProductCostRepository) List(ctx context.Context, f ports.ProductCostFilter) ([]domain.ProductCost, int, error) {
	where := ` WHERE 1=1`
	var args []any
	if f.ProductID != 0 {
		where += ` AND product_id = ?`
		args = append(args, f.ProductID)
	}
	if f.Month != "" {
		where += ` AND month = ?`
		args = append(args, f.Month)
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM product_costs`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count product costs: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, product_id, month, unit_cost, created_at, updated_at
		 FROM product_costs`+where+
			` ORDER BY month DESC, created_at DESC LIMIT ? OFFSET ?`,
		append(args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("query product costs: %w", err)
	}
	defer rows.Close()

	var costs []domain.ProductCost
	for rows.Next() {
		var pc domain.ProductCost
		if err := rows.Scan(&pc.ID, &pc.ProductID, &pc.Month, &pc.UnitCost, &pc.CreatedAt, &pc.UpdatedAt); err != nil {
			return nil, 0, err
		}
		costs = append(costs, pc)
	}
	return costs, total, rows.Err()
}

func (r *ProductCostRepository) Update(ctx context.Context, pc *domain.ProductCost) (*domain.ProductCost, error) {
	_, err := r.db.ExecContext(ctx,
		`UPDATE product_costs SET product_id = ?, month = ?, unit_cost = ?, updated_at = ?
		 WHERE id = ?`,
		pc.ProductID, pc.Month, pc.UnitCost, pc.UpdatedAt, pc.ID,
	)
	if err != nil {
		if isFKViolation(err) {
			return nil, domain.ErrProductReference
		}
		return nil, fmt.Errorf("update product cost: %w", err)
	}
	return r.FindByID(ctx, pc.ID)
}

func (r *ProductCostRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM product_costs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete product cost: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrProductCostNotFound
	}
	return nil
}
