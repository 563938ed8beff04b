package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "platform_searches_total",
			Help: "Product searches per platform, retrieval tier and outcome",
		},
		[]string{"platform", "tier", "outcome"}, // tier: browser|http; outcome: ok|empty|error
	)
	ComparisonsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "price_comparisons_total",
			Help: "Cross-platform price comparisons executed",
		},
	)
	OrdersPlaced = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_placed_total",
			Help: "Automated order attempts per platform and result",
		},
		[]string{"platform", "result"}, // result: placed|failed
	)
	OrderEventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_events_published_total",
			Help: "Order lifecycle events published to the bus",
		},
		[]string{"type"},
	)
)

var (
	LedgerOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_operations_total",
			Help: "Order ledger operations",
		},
		[]string{"op"}, // record|rewrite|evict|hit|miss|advance
	)
	LedgerSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_size",
			Help: "Number of orders currently in the ledger",
		},
	)
)

func MustRegister() {
	prometheus.MustRegister(
		SearchesTotal, ComparisonsTotal, OrdersPlaced, OrderEventsPublished,
		LedgerOps, LedgerSize,
	)
}
