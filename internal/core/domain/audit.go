package domain

import (
	"errors"
	"time"
)

// AuditAction classifies what a mutation did to an entity.
type AuditAction string

const (
	AuditCreate AuditAction = "create"
	AuditUpdate AuditAction = "update"
	AuditDelete AuditAction = "delete"
)

// ErrBadAuditRecord is returned when a record violates the
// snapshot-per-action invariants below.
var ErrBadAuditRecord = errors.New("audit record violates snapshot invariants")

// AuditRecord is an immutable log entry capturing who changed what, from
// which prior state to which new state, and when. Snapshots are whole
// entities, not diffs, so a viewer can compute field-level diffs later.
//
// Invariants:
//
//	create → OldValues nil,     NewValues non-nil
//	update → OldValues non-nil, NewValues non-nil
//	delete → OldValues non-nil, NewValues nil
type AuditRecord struct {
	ID        string         `json:"id,omitempty"`
	ProductID int64          `json:"product_id"`
	Action    AuditAction    `json:"action"`
	ChangedBy int64          `json:"changed_by"`
	OldValues map[string]any `json:"old_values,omitempty"`
	NewValues map[string]any `json:"new_values,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// Validate checks the snapshot invariants for the record's action.
func (r *AuditRecord) Validate() error {
	switch r.Action {
	case AuditCreate:
		if r.OldValues != nil || r.NewValues == nil {
			return ErrBadAuditRecord
		}
	case AuditUpdate:
		if r.OldValues == nil || r.NewValues == nil {
			return ErrBadAuditRecord
		}
	case AuditDelete:
		if r.OldValues == nil || r.NewValues != nil {
			return ErrBadAuditRecord
		}
	default:
		return ErrBadAuditRecord
	}
	return nil
}
