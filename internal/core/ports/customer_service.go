package ports

import (
	"context"

	"github.com/bizcore/erp-api/internal/core/domain"
)

// CustomerInput carries the writable customer fields.
type CustomerInput struct {
	CustomerName      string
	CustomerCode      string
	Address           string
	CityOrDistrict    string
	RegionOrState     string
	Country           string
	TelephoneNumber   string
	Email             string
	ContactPerson     string
	SalesRep          string
	PaymentTermsLimit int64
	BalanceRiskLimit  float64
}

// CustomerPage is one page of a filtered customer listing.
type CustomerPage struct {
	Customers  []domain.Customer `json:"customers"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
}

// CustomerService implements customer CRUD.
type CustomerService interface {
	Create(ctx context.Context, in CustomerInput) (*domain.Customer, error)
	Get(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context, f CustomerFilter) (*CustomerPage, error)
	Update(ctx context.Context, id int64, in CustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}
