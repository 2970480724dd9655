package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")
var ErrDuplicateProductCode = errors.New("product code already exists")

// Product is a catalog entry. Deletion is soft: rows are deactivated by
// clearing IsActive and stay retrievable by id, preserving audit history
// and cost references.
type Product struct {
	ID                 int64     `json:"id"`
	ProductName        string    `json:"product_name"`
	ProductCode        string    `json:"product_code"`
	ProductCategory    string    `json:"product_category"`
	Unit               string    `json:"unit"`
	CriticalStockLevel int64     `json:"critical_stock_level"`
	CurrentStock       int64     `json:"current_stock"`
	Brand              string    `json:"brand,omitempty"`
	IsActive           bool      `json:"is_active"`
	CreatedBy          int64     `json:"created_by,omitempty"`
	CreatedByName      string    `json:"created_by_name,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// LowOnStock reports whether the product is at or below its alert threshold.
func (p *Product) LowOnStock() bool {
	return p.CurrentStock <= p.CriticalStockLevel
}
