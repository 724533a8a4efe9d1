package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	liveTicksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "feeboard",
			Subsystem: "live",
			Name:      "ticks_total",
			Help:      "Total number of live status polls",
		},
		[]string{"status"}, // success, error
	)

	liveMempoolTxCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "feeboard",
			Subsystem: "live",
			Name:      "mempool_tx_count",
			Help:      "Mempool transaction count from the last successful poll",
		},
	)

	liveFeeRate = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "feeboard",
			Subsystem: "live",
			Name:      "fee_rate_sat_vb",
			Help:      "Fee rates from the last successful poll",
		},
		[]string{"tier"}, // fastest, half_hour
	)

	liveCacheUsed = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "feeboard",
			Subsystem: "live",
			Name:      "cache_used",
			Help:      "1 when the last live status came from the backend cache",
		},
	)

	liveLastUpdateTimestamp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "feeboard",
			Subsystem: "live",
			Name:      "last_update_timestamp",
			Help:      "Backend update time of the last successful poll (unix seconds)",
		},
	)
)

// LiveSample is the subset of a live status snapshot exported as gauges.
// Nil pointers leave the corresponding gauge untouched.
type LiveSample struct {
	MempoolTxCount *int64
	FastestFee     *float64
	HalfHourFee    *float64
	UpdatedAt      *float64
	CacheUsed      bool
}

// LiveMetrics records poller outcomes.
type LiveMetrics struct{}

// NewLiveMetrics creates a new instance of LiveMetrics
func NewLiveMetrics() *LiveMetrics {
	return &LiveMetrics{}
}

// RecordSuccess updates the live gauges from a successful poll.
func (lm *LiveMetrics) RecordSuccess(s LiveSample) {
	liveTicksTotal.WithLabelValues("success").Inc()
	if s.MempoolTxCount != nil {
		liveMempoolTxCount.Set(float64(*s.MempoolTxCount))
	}
	if s.FastestFee != nil {
		liveFeeRate.WithLabelValues("fastest").Set(*s.FastestFee)
	}
	if s.HalfHourFee != nil {
		liveFeeRate.WithLabelValues("half_hour").Set(*s.HalfHourFee)
	}
	if s.UpdatedAt != nil {
		liveLastUpdateTimestamp.Set(*s.UpdatedAt)
	}
	if s.CacheUsed {
		liveCacheUsed.Set(1)
	} else {
		liveCacheUsed.Set(0)
	}
}

// RecordFailure counts a failed poll. Gauges keep their last values.
func (lm *LiveMetrics) RecordFailure() {
	liveTicksTotal.WithLabelValues("error").Inc()
}
