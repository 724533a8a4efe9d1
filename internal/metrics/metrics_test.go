package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	before := testutil.ToFloat64(gatewayRequestsTotal.WithLabelValues("/compare", OutcomeStatus))

	ObserveRequest("/compare", OutcomeStatus, 15*time.Millisecond)

	after := testutil.ToFloat64(gatewayRequestsTotal.WithLabelValues("/compare", OutcomeStatus))
	assert.Equal(t, before+1, after)
}

func TestLiveMetrics_RecordSuccess(t *testing.T) {
	lm := NewLiveMetrics()
	count := int64(15000)
	fastest := 42.5

	lm.RecordSuccess(LiveSample{MempoolTxCount: &count, FastestFee: &fastest, CacheUsed: true})

	assert.Equal(t, 15000.0, testutil.ToFloat64(liveMempoolTxCount))
	assert.Equal(t, 42.5, testutil.ToFloat64(liveFeeRate.WithLabelValues("fastest")))
	assert.Equal(t, 1.0, testutil.ToFloat64(liveCacheUsed))
}

func TestLiveMetrics_FailureKeepsGauges(t *testing.T) {
	lm := NewLiveMetrics()
	count := int64(900)
	lm.RecordSuccess(LiveSample{MempoolTxCount: &count})
	errorsBefore := testutil.ToFloat64(liveTicksTotal.WithLabelValues("error"))

	lm.RecordFailure()

	assert.Equal(t, 900.0, testutil.ToFloat64(liveMempoolTxCount))
	assert.Equal(t, errorsBefore+1, testutil.ToFloat64(liveTicksTotal.WithLabelValues("error")))
}

func TestRegisterMetricsTwice(t *testing.T) {
	assert.NotPanics(t, func() {
		RegisterMetrics([]string{"gateway", "live"})
		RegisterMetrics([]string{"gateway", "live", "unknown"})
	})
}
