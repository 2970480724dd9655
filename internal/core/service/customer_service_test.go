package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bizcore/erp-api/internal/core/domain"
	"github.com/bizcore/erp-api/internal/core/ports"
)

type stubCustomerRepo struct {
	customers map[int64]*domain.Customer
	nextID    int64
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[int64]*domain.Customer)}
}

func cloneCustomer(c *domain.Customer) *domain.Customer {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubCustomerRepo) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	r.nextID++
	created := cloneCustomer(c)
	created.ID = r.nextID
	r.customers[created.ID] = cloneCustomer(created)
	return created, nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id int64) (*domain.Customer, error) {
	if c, ok := r.customers[id]; ok {
		return cloneCustomer(c), nil
	}
	return nil, domain.ErrCustomerNotFound
}

func (r *stubCustomerRepo) FindByCode(_ context.Context, code string) (*domain.Customer, error) {
	for _, c := range r.customers {
		if c.CustomerCode == code {
			return cloneCustomer(c), nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

func (r *stubCustomerRepo) List(_ context.Context, f ports.CustomerFilter) ([]domain.Customer, int, error) {
	var all []domain.Customer
	for _, c := range r.customers {
		all = append(all, *c)
	}
	total := len(all)
	start := (f.Page - 1) * f.Limit
	if start > total {
		start = total
	}
	end := start + f.Limit
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	if _, ok := r.customers[c.ID]; !ok {
		return nil, domain.ErrCustomerNotFound
	}
	r.customers[c.ID] = cloneCustomer(c)
	return cloneCustomer(c), nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.customers[id]; !ok {
		return domain.ErrCustomerNotFound
	}
	delete(r.customers, id)
	return nil
}

func customerInput(code string) ports.CustomerInput {
	return ports.CustomerInput{
		CustomerName: "Acme Foods",
		CustomerCode: code,
		Country:      "TR",
		SalesRep:     "ali",
	}
}

func TestCustomerService_Create_DuplicateCode(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), customerInput("CUST-001")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), customerInput("CUST-001")); err != domain.ErrDuplicateCustomerCode {
		t.Fatalf("expected ErrDuplicateCustomerCode, got %v", err)
	}
}

func TestCustomerService_Update_CodeCollision(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo(), zerolog.Nop())

	first, _ := svc.Create(context.Background(), customerInput("CUST-001"))
	_, _ = svc.Create(context.Background(), customerInput("CUST-002"))

	if _, err := svc.Update(context.Background(), first.ID, customerInput("CUST-002")); err != domain.ErrDuplicateCustomerCode {
		t.Fatalf("expected ErrDuplicateCustomerCode, got %v", err)
	}

	// Keeping its own code is fine.
	in := customerInput("CUST-001")
	in.CustomerName = "Acme Foods Ltd"
	updated, err := svc.Update(context.Background(), first.ID, in)
	if err != nil {
		t.Fatalf("update keeping own code failed: %v", err)
	}
	if updated.CustomerName != "Acme Foods Ltd" {
		t.Fatalf("unexpected name: %s", updated.CustomerName)
	}
}

func TestCustomerService_List_Pagination(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomerService(repo, zerolog.Nop())

	for i := 0; i < 5; i++ {
		if _, err := svc.Create(context.Background(), customerInput("CUST-00"+string(rune('1'+i)))); err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
	}

	page, err := svc.List(context.Background(), ports.CustomerFilter{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.Total != 5 || page.Page != 2 || page.TotalPages != 3 {
		t.Fatalf("unexpected page metadata: %+v", page)
	}
	if len(page.Customers) != 2 {
		t.Fatalf("expected 2 customers on page, got %d", len(page.Customers))
	}

	// Zero values fall back to page 1 with the default limit.
	page, err = svc.List(context.Background(), ports.CustomerFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.Page != 1 || page.TotalPages != 1 || len(page.Customers) != 5 {
		t.Fatalf("unexpected defaults: %+v", page)
	}
}

func TestCustomerService_Delete_IsHard(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomerService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), customerInput("CUST-001"))

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); err != domain.ErrCustomerNotFound {
		t.Fatalf("deleted customer must be gone, got %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != domain.ErrCustomerNotFound {
		t.Fatalf("expected ErrCustomerNotFound on double delete, got %v", err)
	}
}
