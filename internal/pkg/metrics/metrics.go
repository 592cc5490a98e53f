// Package metrics defines and registers the custom Prometheus metrics for the
// assembly tracker. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default registry on package init via promauto,
// and exposed by the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "assembly"

// ── Login metrics ────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_input", "invalid_credentials", "throttled",
//     "session_open", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Session metrics ──────────────────────────────────────────────────────────

// LogoutsTotal counts logout attempts by outcome.
// Label:
//   - result: "success", "not_found", or "error"
var LogoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of logout attempts, by result.",
	},
	[]string{"result"},
)

// SessionDuration observes the logged duration of closed employee sessions.
var SessionDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "session_duration_seconds",
		Help:      "Logged duration of closed employee sessions.",
		// 5m, 15m, 30m, 1h, 2h, 4h, 8h, 12h
		Buckets: []float64{300, 900, 1800, 3600, 7200, 14400, 28800, 43200},
	},
)

// BikeReassignmentsTotal counts bike reassignment requests.
// Label:
//   - result: "updated", "no_active_session", or "error"
var BikeReassignmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bike_reassignments_total",
		Help:      "Total number of bike reassignment requests, by result.",
	},
	[]string{"result"},
)
