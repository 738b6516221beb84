// Package metrics defines and registers the custom Prometheus metrics for
// the library catalog API. It is the single source of truth for metric
// names, labels, and help strings. The promauto constructors register with
// the default registry at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "library"

// SignupsTotal counts successful account registrations.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful signups.",
	},
)

// SigninsTotal counts signin attempts.
// Label:
//   - result: "success" or "failure"
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of signin attempts, by result.",
	},
	[]string{"result"},
)

// EntityOpsTotal counts successful catalog mutations.
// Labels:
//   - entity: "author" or "book"
//   - op: "create", "replace", or "remove"
var EntityOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_operations_total",
		Help:      "Total number of successful entity mutations, by entity and operation.",
	},
	[]string{"entity", "op"},
)

// AuthRejectionsTotal counts requests rejected by the bearer-token gate.
// Label:
//   - reason: "token_not_provided" or "invalid_token"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the authentication gate, by reason.",
	},
	[]string{"reason"},
)
