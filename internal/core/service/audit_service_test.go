package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bizcore/erp-api/internal/core/domain"
)

type stubAuditRepo struct {
	inserted []*domain.AuditRecord
	fail     error
}

func (r *stubAuditRepo) Insert(_ context.Context, rec *domain.AuditRecord) error {
	if r.fail != nil {
		return r.fail
	}
	r.inserted = append(r.inserted, rec)
	return nil
}

func (r *stubAuditRepo) FindByProduct(_ context.Context, productID int64) ([]domain.AuditRecord, error) {
	var out []domain.AuditRecord
	for i := len(r.inserted) - 1; i >= 0; i-- {
		if r.inserted[i].ProductID == productID {
			out = append(out, *r.inserted[i])
		}
	}
	return out, nil
}

func TestAuditService_Record_StampsTimestamp(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	rec, err := svc.Record(context.Background(), &domain.AuditRecord{
		ProductID: 1,
		Action:    domain.AuditCreate,
		ChangedBy: 2,
		NewValues: map[string]any{"product_code": "OIL-001"},
	})
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if rec.Timestamp.IsZero() {
		t.Fatalf("expected a stamped timestamp")
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected one insert, got %d", len(repo.inserted))
	}
}

func TestAuditService_Record_KeepsCallerTimestamp(t *testing.T) {
	svc := NewAuditService(&stubAuditRepo{}, zerolog.Nop())

	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	rec, err := svc.Record(context.Background(), &domain.AuditRecord{
		ProductID: 1,
		Action:    domain.AuditCreate,
		ChangedBy: 2,
		NewValues: map[string]any{"id": float64(1)},
		Timestamp: ts,
	})
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if !rec.Timestamp.Equal(ts) {
		t.Fatalf("caller timestamp overwritten: %v", rec.Timestamp)
	}
}

func TestAuditService_Record_RejectsBadSnapshots(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	_, err := svc.Record(context.Background(), &domain.AuditRecord{
		ProductID: 1,
		Action:    domain.AuditCreate,
		ChangedBy: 2,
		OldValues: map[string]any{"id": float64(1)}, // create must not carry old state
		NewValues: map[string]any{"id": float64(1)},
	})
	if !errors.Is(err, domain.ErrBadAuditRecord) {
		t.Fatalf("expected ErrBadAuditRecord, got %v", err)
	}
	if len(repo.inserted) != 0 {
		t.Fatalf("invalid record must not be inserted")
	}
}

func TestAuditService_Record_PropagatesInsertError(t *testing.T) {
	insertErr := errors.New("mongo down")
	svc := NewAuditService(&stubAuditRepo{fail: insertErr}, zerolog.Nop())

	_, err := svc.Record(context.Background(), &domain.AuditRecord{
		ProductID: 1,
		Action:    domain.AuditDelete,
		ChangedBy: 2,
		OldValues: map[string]any{"id": float64(1)},
	})
	if !errors.Is(err, insertErr) {
		t.Fatalf("expected insert error to surface, got %v", err)
	}
}

func TestAuditService_History_NewestFirst(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	for i := 0; i < 3; i++ {
		rec := &domain.AuditRecord{
			ProductID: 1,
			Action:    domain.AuditUpdate,
			ChangedBy: 2,
			OldValues: map[string]any{"current_stock": float64(i)},
			NewValues: map[string]any{"current_stock": float64(i + 1)},
		}
		if _, err := svc.Record(context.Background(), rec); err != nil {
			t.Fatalf("record %d failed: %v", i, err)
		}
	}

	history, err := svc.History(context.Background(), 1)
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 records, got %d", len(history))
	}
	if history[0].NewValues["current_stock"] != float64(3) {
		t.Fatalf("expected newest record first, got %v", history[0].NewValues)
	}
}
