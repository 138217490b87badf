package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, path and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ReconciliationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "balance_reconciliations_total",
			Help: "Customer balance reconciliations performed",
		},
	)

	StockEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stock_events_total",
			Help: "Stock events applied by type",
		},
		[]string{"type"},
	)
)
