// Package metrics declares the service's Prometheus collectors. They are
// registered with the default registry and exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ActionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shipment_actions_total",
		Help: "Total number of boundary actions by action and outcome.",
	},
		[]string{"action", "outcome"},
	)

	ActionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shipment_action_duration_seconds",
		Help:    "Duration of boundary actions.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"action"},
	)

	AuditDropsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shipment_audit_entries_dropped_total",
		Help: "Total number of audit entries dropped because the writer was saturated or failed.",
	})

	AuditPurgedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shipment_audit_entries_purged_total",
		Help: "Total number of audit entries removed by the retention job.",
	})

	EventPublishFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shipment_event_publish_failures_total",
		Help: "Total number of status change batches that could not be published.",
	})

	OrderCacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shipment_order_cache_lookups_total",
		Help: "Order details cache lookups by result (hit, miss, error).",
	},
		[]string{"result"},
	)
)
