package metrics

import (
	"errors"

	"feeboard/pkg/logging"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const subsystem = "Metrics"

// RegisterMetrics registers the collectors of the named groups
// ("gateway", "live") with the default registry.
func RegisterMetrics(groups []string) {
	registerIfNotExists(collectors.NewGoCollector(), "go_collector")
	registerIfNotExists(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}), "process_collector")

	for _, group := range groups {
		switch group {
		case "gateway":
			registerIfNotExists(gatewayRequestsTotal, "gateway_requests_total")
			registerIfNotExists(gatewayRequestDuration, "gateway_request_duration")
		case "live":
			registerIfNotExists(liveTicksTotal, "live_ticks_total")
			registerIfNotExists(liveMempoolTxCount, "live_mempool_tx_count")
			registerIfNotExists(liveFeeRate, "live_fee_rate")
			registerIfNotExists(liveCacheUsed, "live_cache_used")
			registerIfNotExists(liveLastUpdateTimestamp, "live_last_update_timestamp")
		default:
			logging.Warn(subsystem, "Unknown metrics group: %s", group)
		}
	}
}

// registerIfNotExists registers a collector if it's not already registered
func registerIfNotExists(collector prometheus.Collector, name string) {
	if err := prometheus.Register(collector); err != nil {
		var alreadyRegErr prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegErr) {
			logging.Debug(subsystem, "%s already registered", name)
		} else {
			logging.Error(subsystem, err, "Failed to register %s", name)
		}
	}
}
