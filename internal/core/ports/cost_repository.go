package ports

import (
	"context"

	"github.com/bizcore/erp-api/internal/core/domain"
)

// FixedCostRepository persists monthly overhead entries. Delete is hard.
type FixedCostRepository interface {
	Create(ctx context.Context, fc *domain.FixedCost) (*domain.FixedCost, error)
	FindByID(ctx context.Context, id int64) (*domain.FixedCost, error)
	List(ctx context.Context, month string) ([]domain.FixedCost, error)
	Update(ctx context.Context, fc *domain.FixedCost) (*domain.FixedCost, error)
	Delete(ctx context.Context, id int64) error
}

// ProductCostFilter narrows product cost listings.
type ProductCostFilter struct {
	ProductID int64
	Month     string
	Limit     int
	Offset    int
}

// ProductCostRepository persists per-unit monthly product costs.
// Create and Update surface domain.ErrProductReference when product_id
// has no matching product row. Delete is hard.
type ProductCostRepository interface {
	Create(ctx context.Context, pc *domain.ProductCost) (*domain.ProductCost, error)
	FindByID(ctx context.Context, id int64) (*domain.ProductCost, error)
	List(ctx context.Context, f ProductCostFilter) ([]domain.ProductCost, int, error)
	Update(ctx context.Context, pc *domain.ProductCost) (*domain.ProductCost, error)
	Delete(ctx context.Context, id int64) error
}
