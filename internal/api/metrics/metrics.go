// Package metrics defines and registers all custom Prometheus metrics for
// the RBAC directory. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "directory"

// MutationsTotal counts mutation attempts against the directory store.
// Labels:
//   - entity: "user" or "role"
//   - operation: "create", "update" or "delete"
//   - result: "success", "duplicate", "not_found" or "invalid"
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of directory mutation attempts, labelled by outcome.",
	},
	[]string{"entity", "operation", "result"},
)

// NotificationsTotal counts user-visible notifications by kind.
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of notifications delivered, labelled by kind (success/error).",
	},
	[]string{"kind"},
)

// NotificationsDroppedTotal counts notifications discarded because the
// dispatch buffer was full.
var NotificationsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dropped_total",
		Help:      "Total number of notifications dropped due to a full dispatch buffer.",
	},
)
