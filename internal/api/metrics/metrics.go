// Package metrics defines all custom Prometheus metrics for the ERP API.
// It is the single source of truth for metric names, labels, and help
// strings. All metrics self-register with the default registry via
// promauto; the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "erp"

// ── Authentication / authorization metrics ────────────────────────────────────

// AuthDenialsTotal counts rejected requests at the auth boundary.
// Label:
//   - reason: "missing_credential", "invalid_token", "session_expired", "forbidden"
var AuthDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denials_total",
		Help:      "Total number of requests rejected by authentication or authorization.",
	},
	[]string{"reason"},
)

// LoginsTotal counts login attempts by outcome.
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result (success/failure).",
	},
	[]string{"result"},
)

// ── Audit trail metrics ───────────────────────────────────────────────────────

// AuditRecordsTotal counts audit records successfully appended.
// Label:
//   - action: "create", "update", "delete"
var AuditRecordsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_records_total",
		Help:      "Total number of audit records written, by action.",
	},
	[]string{"action"},
)

// AuditFailuresTotal counts audit writes that were lost. The parent
// mutation still succeeds, so this counter is the only trace of a gap
// in the trail besides the error log.
var AuditFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_failures_total",
		Help:      "Total number of audit record writes that failed and were swallowed.",
	},
)

// ── Domain metrics ────────────────────────────────────────────────────────────

// ProductMutationsTotal counts successful product mutations.
// Label:
//   - action: "create", "update", "delete"
var ProductMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_mutations_total",
		Help:      "Total number of successful product mutations, by action.",
	},
	[]string{"action"},
)
