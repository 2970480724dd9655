package domain

import "testing"

func TestAuditRecord_Validate(t *testing.T) {
	state := map[string]any{"product_name": "Widget"}

	cases := []struct {
		name    string
		rec     AuditRecord
		wantErr bool
	}{
		{"create with new only", AuditRecord{Action: AuditCreate, NewValues: state}, false},
		{"create with old state", AuditRecord{Action: AuditCreate, OldValues: state, NewValues: state}, true},
		{"create without new state", AuditRecord{Action: AuditCreate}, true},
		{"update with both", AuditRecord{Action: AuditUpdate, OldValues: state, NewValues: state}, false},
		{"update missing old", AuditRecord{Action: AuditUpdate, NewValues: state}, true},
		{"update missing new", AuditRecord{Action: AuditUpdate, OldValues: state}, true},
		{"delete with old only", AuditRecord{Action: AuditDelete, OldValues: state}, false},
		{"delete with new state", AuditRecord{Action: AuditDelete, OldValues: state, NewValues: state}, true},
		{"delete without old state", AuditRecord{Action: AuditDelete}, true},
		{"unknown action", AuditRecord{Action: "upsert", OldValues: state, NewValues: state}, true},
	}

	for _, tc := range cases {
		err := tc.rec.Validate()
		if tc.wantErr && err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
	}
}
