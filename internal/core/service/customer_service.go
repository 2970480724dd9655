package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/bizcore/erp-api/internal/core/domain"
	"github.com/bizcore/erp-api/internal/core/ports"
)

const defaultPageLimit = 50

// CustomerService implements customer CRUD. Customer deletion is hard:
// the row is removed, unlike products which are only deactivated.
type CustomerService struct {
	repo ports.CustomerRepository
	log  zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, log zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, log: log}
}

func (s *CustomerService) Create(ctx context.Context, in ports.CustomerInput) (*domain.Customer, error) {
	if existing, err := s.repo.FindByCode(ctx, in.CustomerCode); err == nil && existing != nil {
		return nil, domain.ErrDuplicateCustomerCode
	} else if err != nil && !errors.Is(err, domain.ErrCustomerNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	customer := applyCustomerInput(&domain.Customer{CreatedAt: now}, in)
	customer.UpdatedAt = now

	created, err := s.repo.Create(ctx, customer)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("customer_id", created.ID).Str("customer_code", created.CustomerCode).Msg("customer created")
	return created, nil
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context, f ports.CustomerFilter) (*ports.CustomerPage, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = defaultPageLimit
	}

	customers, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	totalPages := total / f.Limit
	if total%f.Limit != 0 {
		totalPages++
	}

	return &ports.CustomerPage{
		Customers:  customers,
		Total:      total,
		Page:       f.Page,
		TotalPages: totalPages,
	}, nil
}

func (s *CustomerService) Update(ctx context.Context, id int64, in ports.CustomerInput) (*domain.Customer, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if other, err := s.repo.FindByCode(ctx, in.CustomerCode); err == nil && other != nil && other.ID != id {
		return nil, domain.ErrDuplicateCustomerCode
	} else if err != nil && !errors.Is(err, domain.ErrCustomerNotFound) {
		return nil, err
	}

	updated := applyCustomerInput(current, in)
	updated.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, updated)
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("customer_id", id).Msg("customer deleted")
	return nil
}

func applyCustomerInput(c *domain.Customer, in ports.CustomerInput) *domain.Customer {
	c.CustomerName = in.CustomerName
	c.CustomerCode = in.CustomerCode
	c.Address = in.Address
	c.CityOrDistrict = in.CityOrDistrict
	c.RegionOrState = in.RegionOrState
	c.Country = in.Country
	c.TelephoneNumber = in.TelephoneNumber
	c.Email = in.Email
	c.ContactPerson = in.ContactPerson
	c.SalesRep = in.SalesRep
	c.PaymentTermsLimit = in.PaymentTermsLimit
	c.BalanceRiskLimit = in.BalanceRiskLimit
	return c
}
