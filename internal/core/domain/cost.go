package domain

import (
	"errors"
	"time"
)

var ErrFixedCostNotFound = errors.New("fixed cost not found")
var ErrProductCostNotFound = errors.New("product cost not found")

// ErrProductReference is returned when a cost entry points at a product
// that does not exist.
var ErrProductReference = errors.New("referenced product does not exist")

// FixedCost is a monthly overhead entry (rent, payroll, utilities).
// Month uses the YYYY-MM form. Deletion is hard.
type FixedCost struct {
	ID        int64     `json:"id"`
	CostName  string    `json:"cost_name"`
	Month     string    `json:"month"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductCost is the per-unit cost of a product for a given month.
// ProductID must reference an existing product row. Deletion is hard.
type ProductCost struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Month     string    `json:"month"`
	UnitCost  float64   `json:"unit_cost"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
