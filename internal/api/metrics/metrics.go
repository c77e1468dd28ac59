// Package metrics defines and registers all custom Prometheus metrics for
// the account system. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package load via
// promauto; the /metrics route is wired by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "accounts"

// UsersImportedTotal counts individual records processed by batch imports.
// Label:
//   - outcome: "success" or "failed"
var UsersImportedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_imported_total",
		Help:      "Total number of batch-imported user records, by outcome.",
	},
	[]string{"outcome"},
)

// ImportBatchesTotal counts import requests that reached per-record
// processing (payloads rejected by the global preconditions are excluded).
var ImportBatchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "import_batches_total",
		Help:      "Total number of accepted batch import requests.",
	},
)

// ImportBatchDuration measures a whole import request from decode to result.
var ImportBatchDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "import_batch_duration_seconds",
		Help:      "Duration of batch import processing.",
		Buckets:   prometheus.DefBuckets,
	},
)

// UsersGeneratedTotal counts synthetic user records produced by the
// generate endpoint.
var UsersGeneratedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_generated_total",
		Help:      "Total number of synthetic user records generated.",
	},
)

// ProfileAccessDeniedTotal counts profile lookups rejected by access control.
var ProfileAccessDeniedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_access_denied_total",
		Help:      "Total number of profile reads denied by authorization.",
	},
)
