// Package metrics defines the custom Prometheus metrics of the pricing API.
// It is the single source of truth for metric names, labels, and help
// strings; registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pricing"

// LoginsTotal counts login attempts by outcome.
// Labels:
//   - result: "success", "invalid_credentials" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer token checks at the gate.
// Labels:
//   - result: "ok", "missing", "invalid" or "expired"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)

// BootstrapRunsTotal counts startup bootstrap outcomes.
// Labels:
//   - outcome: "created", "present" or "failed"
var BootstrapRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bootstrap_runs_total",
		Help:      "Total number of default-admin bootstrap runs, by outcome.",
	},
	[]string{"outcome"},
)
