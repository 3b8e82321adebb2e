package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// UpstreamRequests counts upstream calls by outcome: success or the failure kind
	// (transport-error, timeout, bad-status, protocol-error, unknown).
	UpstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stopboard_upstream_requests_total",
			Help: "Total number of upstream departure board requests.",
		},
		[]string{"outcome"},
	)

	UpstreamLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stopboard_upstream_request_duration_seconds",
			Help:    "Latency of upstream departure board requests, including normalization.",
			Buckets: prometheus.DefBuckets,
		},
	)

	// BoardRequests counts cache decisions: fresh, refreshed, degraded, unavailable.
	BoardRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stopboard_board_requests_total",
			Help: "Total number of board requests by cache decision.",
		},
		[]string{"result"},
	)

	BoardDepartures = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "stopboard_board_departures",
			Help: "Number of departures in the last successfully fetched board.",
		},
	)
)

func init() {
	prometheus.MustRegister(UpstreamRequests)
	prometheus.MustRegister(UpstreamLatency)
	prometheus.MustRegister(BoardRequests)
	prometheus.MustRegister(BoardDepartures)
}
