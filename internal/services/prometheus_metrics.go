package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics records engine activity: extraction outcomes, merchant
// resolution methods, cache behavior and dispatch counts.
type PrometheusMetrics struct {
	messagesAnalyzed      prometheus.Counter
	transactionsExtracted prometheus.Counter
	extractionSkipped     *prometheus.CounterVec
	merchantResolution    *prometheus.CounterVec
	analysisCache         *prometheus.CounterVec
	analysisDuration      prometheus.Histogram
	queriesDispatched     *prometheus.CounterVec
	queryDuration         prometheus.Histogram
	storedMessages        prometheus.Gauge
}

// NewPrometheusMetrics creates a MetricsRecorderInterface backed by the
// default Prometheus registry.
func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		messagesAnalyzed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "messages_analyzed_total",
				Help: "Total number of messages fed through the extraction pipeline",
			},
		),
		transactionsExtracted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "transactions_extracted_total",
				Help: "Total number of transactions assembled from messages",
			},
		),
		extractionSkipped: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "extraction_skipped_total",
				Help: "Messages skipped by the assembler, by reason",
			},
			[]string{"reason"},
		),
		merchantResolution: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "merchant_resolution_total",
				Help: "Merchant resolution outcomes by method",
			},
			[]string{"method"},
		),
		analysisCache: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analysis_cache_total",
				Help: "Memoized analysis lookups by result",
			},
			[]string{"result"},
		),
		analysisDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "analysis_duration_milliseconds",
				Help:    "Full extraction pass duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		queriesDispatched: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "queries_dispatched_total",
				Help: "Queries answered, by handler (help = no route matched)",
			},
			[]string{"handler"},
		),
		queryDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "query_duration_milliseconds",
				Help:    "Query dispatch and rendering duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		storedMessages: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "stored_messages_total",
				Help: "Current number of messages held by the message store",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "messages.analyzed":
		m.messagesAnalyzed.Inc()
	case "transactions.extracted":
		m.transactionsExtracted.Inc()
	case "extraction.skipped":
		if reason := tags["reason"]; reason != "" {
			m.extractionSkipped.WithLabelValues(reason).Inc()
		}
	case "merchant.resolution":
		if method := tags["method"]; method != "" {
			m.merchantResolution.WithLabelValues(method).Inc()
		}
	case "analysis.cache":
		if result := tags["result"]; result != "" {
			m.analysisCache.WithLabelValues(result).Inc()
		}
	case "query.dispatched":
		if handler := tags["handler"]; handler != "" {
			m.queriesDispatched.WithLabelValues(handler).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "analysis.duration":
		m.analysisDuration.Observe(float64(duration.Milliseconds()))
	case "query.duration":
		m.queryDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == "messages.stored" {
		m.storedMessages.Set(value)
	}
}

// NoopMetrics discards every observation. Used in tests and wherever a
// recorder is optional.
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface { return &NoopMetrics{} }

func (*NoopMetrics) IncrementCounter(string, map[string]string)     {}
func (*NoopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (*NoopMetrics) RecordGauge(string, float64, map[string]string) {}
