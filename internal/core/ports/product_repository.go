package ports

import (
	"context"

	"github.com/bizcore/erp-api/internal/core/domain"
)

// ProductRepository persists catalog products.
//
// Delete is soft: implementations clear is_active and keep the row, so
// FindByID still resolves deactivated products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	FindByCode(ctx context.Context, code string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	ListLowStock(ctx context.Context) ([]domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Brands(ctx context.Context) ([]string, error)
	Update(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Deactivate(ctx context.Context, id int64) error
}
