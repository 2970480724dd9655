package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/bizcore/erp-api/internal/core/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func seedProduct(t *testing.T, repo *ProductRepository, code string) *domain.Product {
	t.Helper()
	now := time.Now().UTC()
	p, err := repo.Create(context.Background(), &domain.Product{
		ProductName:        "Olive Oil 1L",
		ProductCode:        code,
		ProductCategory:    "Oils",
		Unit:               "bottle",
		CriticalStockLevel: 10,
		CurrentStock:       40,
		Brand:              "Verde",
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	if err != nil {
		t.Fatalf("seed product %s: %v", code, err)
	}
	return p
}
