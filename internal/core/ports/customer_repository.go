package ports

import (
	"context"

	"github.com/bizcore/erp-api/internal/core/domain"
)

// CustomerFilter narrows customer listings. Zero values mean "no filter".
type CustomerFilter struct {
	Search   string // matches customer_name or customer_code
	Country  string
	SalesRep string
	Page     int
	Limit    int
}

// CustomerRepository persists customers. Delete is hard.
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
	FindByCode(ctx context.Context, code string) (*domain.Customer, error)
	List(ctx context.Context, f CustomerFilter) ([]domain.Customer, int, error)
	Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}
