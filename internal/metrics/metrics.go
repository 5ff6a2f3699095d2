package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	EnchantsPerformed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEnchantsPerformed,
			Help: HelpTextEnchantsPerformed,
		},
		[]string{LabelMaterial},
	)

	EnchantsApplied = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameEnchantsApplied,
			Help:    HelpTextEnchantsApplied,
			Buckets: PickCountBuckets,
		},
	)

	CandidatePoolSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameCandidatePoolSize,
			Help:    HelpTextCandidatePoolSize,
			Buckets: PoolSizeBuckets,
		},
	)
)

// RecordEnchantPerformed records one completed enchanting run.
func RecordEnchantPerformed(material string, picks int) {
	EnchantsPerformed.WithLabelValues(material).Inc()
	EnchantsApplied.Observe(float64(picks))
}

// RecordCandidatePoolSize records the size of one generated candidate pool.
func RecordCandidatePoolSize(size int) {
	CandidatePoolSize.Observe(float64(size))
}
