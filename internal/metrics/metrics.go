package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	LabelItem   = "item"
	LabelReason = "reason"
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
)

// Spin Metrics
var (
	SpinsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wheel_spins_started_total",
			Help: "Spins that left Idle.",
		},
	)

	SpinsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wheel_spins_rejected_total",
			Help: "Spin requests refused before selection.",
		},
		[]string{LabelReason},
	)

	SpinsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wheel_spins_resolved_total",
			Help: "Resolved spins by winning item.",
		},
		[]string{LabelItem},
	)

	PointerMismatches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wheel_pointer_mismatches_total",
			Help: "Spins abandoned because the pointer disagreed with the selection.",
		},
	)

	RemainingQuantity = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wheel_remaining_quantity",
			Help: "Remaining quantity by item.",
		},
		[]string{LabelItem},
	)
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wheel_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wheel_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)
)

// SetRemaining replaces the remaining quantity gauge with items.
func SetRemaining(items map[string]int) {
	RemainingQuantity.Reset()
	for name, qty := range items {
		RemainingQuantity.WithLabelValues(name).Set(float64(qty))
	}
}
