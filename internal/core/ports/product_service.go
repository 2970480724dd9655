package ports

import (
	"context"

	"github.com/bizcore/erp-api/internal/core/domain"
)

// ProductInput carries the writable product fields.
type ProductInput struct {
	ProductName        string
	ProductCode        string
	ProductCategory    string
	Unit               string
	CriticalStockLevel int64
	CurrentStock       int64
	Brand              string
}

// BulkItemError describes one failed item of a bulk import.
type BulkItemError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

// BulkResult aggregates a bulk import: every item is attempted, failures
// are reported per item instead of aborting the batch.
type BulkResult struct {
	Created int             `json:"created"`
	Failed  int             `json:"failed"`
	Errors  []BulkItemError `json:"errors,omitempty"`
}

// ProductService implements audited product CRUD.
type ProductService interface {
	Create(ctx context.Context, in ProductInput, actorID int64) (*domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	ListLowStock(ctx context.Context) ([]domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Brands(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id int64, in ProductInput, actorID int64) (*domain.Product, error)
	Delete(ctx context.Context, id int64, actorID int64) error
	BulkCreate(ctx context.Context, items []ProductInput, actorID int64) (*BulkResult, error)
}
