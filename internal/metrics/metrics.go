// Package metrics defines the Prometheus instrumentation for the label
// service. All collectors are registered with the default registry via
// promauto and exposed by the /metrics endpoint.
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

// Pipeline Metrics
var (
	ParsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameParsesTotal,
			Help: HelpTextParsesTotal,
		},
		[]string{LabelSchema, LabelOutcome},
	)

	ParseRowsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameParseRowsSkipped,
			Help: HelpTextParseRowsSkipped,
		},
		[]string{LabelSchema},
	)

	RecordOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecordOps,
			Help: HelpTextRecordOps,
		},
		[]string{LabelOp},
	)

	DocumentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDocumentsTotal,
			Help: HelpTextDocumentsTotal,
		},
		[]string{LabelProfile},
	)

	DocumentBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameDocumentBytes,
			Help:    HelpTextDocumentBytes,
			Buckets: DocumentBytesBuckets,
		},
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSessionsActive,
			Help: HelpTextSessionsActive,
		},
	)
)
