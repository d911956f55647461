// Package metrics defines the custom Prometheus metrics for the payments
// API. It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "payments"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// PaymentsCreatedTotal counts newly created payments.
// Label:
//   - status: initial payment status (e.g. "pendiente")
var PaymentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_created_total",
		Help:      "Total number of payments created, by initial status.",
	},
	[]string{"status"},
)

// PaymentsDeletedTotal counts payments removed together with their detail rows.
var PaymentsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_deleted_total",
		Help:      "Total number of payments deleted (cascade included).",
	},
)

// IdempotencyTotal counts idempotency-key decisions on payment creation.
// Label:
//   - result: "hit" (replayed) or "miss" (new key)
var IdempotencyTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotency_total",
		Help:      "Total number of idempotency checks on payment creation, by result.",
	},
	[]string{"result"},
)
