package ports

import (
	"context"

	"github.com/bizcore/erp-api/internal/core/domain"
)

// FixedCostInput carries the writable fixed cost fields.
type FixedCostInput struct {
	CostName string
	Month    string
	Amount   float64
}

// ProductCostInput carries the writable product cost fields.
type ProductCostInput struct {
	ProductID int64
	Month     string
	UnitCost  float64
}

// ProductCostPage is one page of a filtered product cost listing.
type ProductCostPage struct {
	Costs []domain.ProductCost `json:"costs"`
	Total int                  `json:"total"`
}

// CostService implements fixed cost and product cost CRUD.
type CostService interface {
	CreateFixed(ctx context.Context, in FixedCostInput) (*domain.FixedCost, error)
	ListFixed(ctx context.Context, month string) ([]domain.FixedCost, error)
	UpdateFixed(ctx context.Context, id int64, in FixedCostInput) (*domain.FixedCost, error)
	DeleteFixed(ctx context.Context, id int64) error

	CreateProductCost(ctx context.Context, in ProductCostInput) (*domain.ProductCost, error)
	ListProductCosts(ctx context.Context, f ProductCostFilter) (*ProductCostPage, error)
	UpdateProductCost(ctx context.Context, id int64, in ProductCostInput) (*domain.ProductCost, error)
	DeleteProductCost(ctx context.Context, id int64) error
}
