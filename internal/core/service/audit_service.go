package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/bizcore/erp-api/internal/core/domain"
	"github.com/bizcore/erp-api/internal/core/ports"
)

// AuditService appends immutable change records and serves their history.
type AuditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, log: log}
}

// Record validates the snapshot invariants, stamps the record, and
// appends it. Callers that must not fail on a lost audit write handle
// the returned error themselves; Record does not swallow anything.
func (s *AuditService) Record(ctx context.Context, rec *domain.AuditRecord) (*domain.AuditRecord, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	if err := s.repo.Insert(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// History returns the audit trail for one product, newest first.
func (s *AuditService) History(ctx context.Context, productID int64) ([]domain.AuditRecord, error) {
	return s.repo.FindByProduct(ctx, productID)
}

// snapshot captures an entity as a generic field map so that two
// snapshots can be diffed field by field later. A nil input stays nil,
// which is what the create/delete invariants rely on.
func snapshot(entity any) map[string]any {
	if entity == nil {
		return nil
	}
	raw, err := json.Marshal(entity)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}
