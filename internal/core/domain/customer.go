package domain

import (
	"errors"
	"time"
)

var ErrCustomerNotFound = errors.New("customer not found")
var ErrDuplicateCustomerCode = errors.New("customer code already exists")

// Customer is a sales account. Deletion is hard: the row is removed.
type Customer struct {
	ID                int64     `json:"id"`
	CustomerName      string    `json:"customer_name"`
	CustomerCode      string    `json:"customer_code"`
	Address           string    `json:"address,omitempty"`
	CityOrDistrict    string    `json:"city_or_district,omitempty"`
	RegionOrState     string    `json:"region_or_state,omitempty"`
	Country           string    `json:"country,omitempty"`
	TelephoneNumber   string    `json:"telephone_number,omitempty"`
	Email             string    `json:"email,omitempty"`
	ContactPerson     string    `json:"contact_person,omitempty"`
	SalesRep          string    `json:"sales_rep,omitempty"`
	PaymentTermsLimit int64     `json:"payment_terms_limit"`
	BalanceRiskLimit  float64   `json:"balance_risk_limit"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
