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

// Override Metrics
var (
	OverridePasses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOverridePasses,
			Help: HelpTextOverridePasses,
		},
		[]string{LabelCategory, LabelStatus},
	)

	OverrideEntries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOverrideEntries,
			Help: HelpTextOverrideEntries,
		},
		[]string{LabelCategory, LabelOutcome},
	)

	OverrideBuffLists = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOverrideBuffLists,
			Help: HelpTextOverrideBuffLists,
		},
		[]string{LabelCategory},
	)

	OverridePassDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameOverridePassDuration,
			Help:    HelpTextOverridePassDuration,
			Buckets: PassDurationBuckets,
		},
		[]string{LabelCategory},
	)
)
