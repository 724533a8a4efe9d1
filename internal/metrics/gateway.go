package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	gatewayRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "feeboard",
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Total number of backend requests",
		},
		[]string{"path", "outcome"}, // outcome: success, status, network, decode
	)

	gatewayRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "feeboard",
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "Backend request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"path"},
	)
)

// Outcome labels for gateway requests
const (
	OutcomeSuccess = "success"
	OutcomeStatus  = "status"
	OutcomeNetwork = "network"
	OutcomeDecode  = "decode"
)

// ObserveRequest records one backend call. Collectors that were never
// registered still count, they just are not exported.
func ObserveRequest(path, outcome string, duration time.Duration) {
	gatewayRequestsTotal.WithLabelValues(path, outcome).Inc()
	gatewayRequestDuration.WithLabelValues(path).Observe(duration.Seconds())
}
