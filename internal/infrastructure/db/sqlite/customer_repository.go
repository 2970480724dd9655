package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/bizcore/erp-api/internal/core/domain"
	"github.com/bizcore/erp-api/internal/core/ports"
)

const customerColumns = `id, customer_name, customer_code, address, city_or_district,
	region_or_state, country, telephone_number, email, contact_person, sales_rep,
	payment_terms_limit, balance_risk_limit, created_at, updated_at`

// CustomerRepository persists customers. Deletion is hard.
type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO customers (customer_name, customer_code, address, city_or_district,
			region_or_state, country, telephone_number, email, contact_person, sales_rep,
			payment_terms_limit, balance_risk_limit, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.CustomerName, c.CustomerCode, c.Address, c.CityOrDistrict,
		c.RegionOrState, c.Country, c.TelephoneNumber, c.Email, c.ContactPerson, c.SalesRep,
		c.PaymentTermsLimit, c.BalanceRiskLimit, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateCustomerCode
		}
		return nil, fmt.Errorf("insert customer: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert customer id: %w", err)
	}
	return r.FindByID(ctx, id)
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return scanCustomer(r.db.QueryRowContext(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id = ?`, id))
}

func (r *CustomerRepository) FindByCode(ctx context.Context, code string) (*domain.Customer, error) {
	return scanCustomer(r.db.QueryRowContext(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE customer_code = ?`, code))
}

// List returns one page of customers matching the filter plus the total
// match count across all pages.
func (r *CustomerRepository) List(ctx context.Context, f ports.CustomerFilter) ([]domain.Customer, int, error) {
	var conds []string
	var args []any

	if f.Search != "" {
		conds = append(conds, `(customer_name LIKE ? OR customer_code LIKE ?)`)
		pattern := "%" + f.Search + "%"
		args = append(args, pattern, pattern)
	}
	if f.Country != "" {
		conds = append(conds, `country = ?`)
		args = append(args, f.Country)
	}
	if f.SalesRep != "" {
		conds = append(conds, `sales_rep = ?`)
		args = append(args, f.SalesRep)
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM customers`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	offset := (f.Page - 1) * f.Limit
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+customerColumns+` FROM customers`+where+
			` ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		append(args, f.Limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		c, err := scanCustomerRow(rows)
		if err != nil {
			return nil, 0, err
		}
		customers = append(customers, *c)
	}
	return customers, total, rows.Err()
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	_, err := r.db.ExecContext(ctx,
		`UPDATE customers SET customer_name = ?, customer_code = ?, address = ?,
			city_or_district = ?, region_or_state = ?, country = ?, telephone_number = ?,
			email = ?, contact_person = ?, sales_rep = ?, payment_terms_limit = ?,
			balance_risk_limit = ?, updated_at = ?
		 WHERE id = ?`,
		c.CustomerName, c.CustomerCode, c.Address,
		c.CityOrDistrict, c.RegionOrState, c.Country, c.TelephoneNumber,
		c.Email, c.ContactPerson, c.SalesRep, c.PaymentTermsLimit,
		c.BalanceRiskLimit, c.UpdatedAt, c.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateCustomerCode
		}
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return r.FindByID(ctx, c.ID)
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func scanCustomer(row *sql.Row) (*domain.Customer, error) {
	c, err := scanCustomerRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return c, nil
}

func scanCustomerRow(row rowScanner) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.CustomerName, &c.CustomerCode, &c.Address, &c.CityOrDistrict,
		&c.RegionOrState, &c.Country, &c.TelephoneNumber, &c.Email, &c.ContactPerson,
		&c.SalesRep, &c.PaymentTermsLimit, &c.BalanceRiskLimit, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
