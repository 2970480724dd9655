package ports

import (
	"context"

	"github.com/bizcore/erp-api/internal/core/domain"
)

// AuditRepository is the append-only store behind the audit recorder.
// Records are never mutated or deleted once inserted.
type AuditRepository interface {
	Insert(ctx context.Context, rec *domain.AuditRecord) error
	// FindByProduct returns records for one product, newest first.
	FindByProduct(ctx context.Context, productID int64) ([]domain.AuditRecord, error)
}

// AuditRecorder is the write/read contract the domain services use.
type AuditRecorder interface {
	Record(ctx context.Context, rec *domain.AuditRecord) (*domain.AuditRecord, error)
	History(ctx context.Context, productID int64) ([]domain.AuditRecord, error)
}
