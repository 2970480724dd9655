// Package sqlite is the relational store for users, products, customers,
// and cost entries. All access goes through parameterized queries.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	// sqlite driver
	_ "modernc.org/sqlite"
)

// Open opens the database at path, enables foreign keys, and applies the
// schema migrations. Use ":memory:" for tests.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}

	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite pragma: %w", err)
	}

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite migrate: %w", err)
	}

	return db, nil
}

func migrate(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			product_name TEXT NOT NULL,
			product_code TEXT UNIQUE NOT NULL,
			product_category TEXT NOT NULL,
			unit TEXT NOT NULL,
			critical_stock_level INTEGER NOT NULL DEFAULT 0,
			current_stock INTEGER NOT NULL DEFAULT 0,
			brand TEXT NOT NULL DEFAULT '',
			is_active INTEGER NOT NULL DEFAULT 1,
			created_by INTEGER REFERENCES users(id),
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS customers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			customer_name TEXT NOT NULL,
			customer_code TEXT UNIQUE NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			city_or_district TEXT NOT NULL DEFAULT '',
			region_or_state TEXT NOT NULL DEFAULT '',
			country TEXT NOT NULL DEFAULT '',
			telephone_number TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			contact_person TEXT NOT NULL DEFAULT '',
			sales_rep TEXT NOT NULL DEFAULT '',
			payment_terms_limit INTEGER NOT NULL DEFAULT 0,
			balance_risk_limit REAL NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS fixed_costs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			cost_name TEXT NOT NULL,
			month TEXT NOT NULL,
			amount REAL NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS product_costs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			product_id INTEGER NOT NULL REFERENCES products(id),
			month TEXT NOT NULL,
			unit_cost REAL NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure.
// The driver exposes constraint errors only through their message text.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isFKViolation reports whether err is a FOREIGN KEY constraint failure.
func isFKViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
