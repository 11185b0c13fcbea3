// Package metrics provides Prometheus metrics for the showcase service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns all Prometheus collectors for the service.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	// HTTP surface
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Store access
	storeQueryLatency *prometheus.HistogramVec
	storeErrors       *prometheus.CounterVec

	// Domain health
	summaryRebuildDuration prometheus.Histogram
	summarySkippedTargets  prometheus.Counter
	malformedFields        *prometheus.CounterVec
	searchRequests         *prometheus.CounterVec
	researcherCount        prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "showcase",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initialize()
	return m
}

func (m *Manager) initialize() {
	factory := promauto.With(m.registry)

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method and status code.",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds.",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method"})

	m.storeQueryLatency = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "store_query_duration_ms",
		Help:      "Backing store query duration in milliseconds.",
		Buckets:   m.histogramBuckets,
	}, []string{"operation"})

	m.storeErrors = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "store_errors_total",
		Help:      "Backing store failures by operation.",
	}, []string{"operation"})

	m.summaryRebuildDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "summary_rebuild_duration_ms",
		Help:      "Full-population SDG summary rebuild duration in milliseconds.",
		Buckets:   m.histogramBuckets,
	})

	m.summarySkippedTargets = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "summary_skipped_targets_total",
		Help:      "Target entries dropped during aggregation for invalid shape.",
	})

	m.malformedFields = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "malformed_fields_total",
		Help:      "Record sub-fields that failed to parse and were defaulted.",
	}, []string{"field"})

	m.searchRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "search_requests_total",
		Help:      "Search requests by category filter.",
	}, []string{"filter"})

	m.researcherCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "researchers",
		Help:      "Number of researcher records in the backing store.",
	})
}

// Handler exposes the global registry for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.HandlerFor(customRegistry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration observes one HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method).Observe(ms)
}

// RecordStoreQuery observes one store query duration.
func RecordStoreQuery(operation string, ms float64) {
	globalManager.storeQueryLatency.WithLabelValues(operation).Observe(ms)
}

// RecordStoreError counts one store failure.
func RecordStoreError(operation string) {
	globalManager.storeErrors.WithLabelValues(operation).Inc()
}

// RecordSummaryRebuild observes one aggregation pass.
func RecordSummaryRebuild(ms float64, skippedTargets int) {
	globalManager.summaryRebuildDuration.Observe(ms)
	globalManager.summarySkippedTargets.Add(float64(skippedTargets))
}

// RecordMalformedField counts one defaulted sub-field parse.
func RecordMalformedField(field string) {
	globalManager.malformedFields.WithLabelValues(field).Inc()
}

// RecordSearchRequest counts one search by filter.
func RecordSearchRequest(filter string) {
	globalManager.searchRequests.WithLabelValues(filter).Inc()
}

// UpdateResearcherCount sets the researcher gauge.
func UpdateResearcherCount(n int) {
	globalManager.researcherCount.Set(float64(n))
}
