// Package metrics provides Prometheus metrics for the Touchline squad
// builder service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the Touchline service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Core business metrics
	mutations        *prometheus.CounterVec
	rejections       *prometheus.CounterVec
	formationChanges prometheus.Counter
	pricingCalls     prometheus.Counter

	// Operational health metrics
	totalSquads   prometheus.Gauge
	catalogSize   prometheus.Gauge
	storeErrors   prometheus.Counter
	settingsEdits prometheus.Counter

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "touchline",
		subsystem:        "squad",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.mutations = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "mutations_total",
			Help:      "Total number of squad mutations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	m.rejections = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "rejections_total",
			Help:      "Total number of validation rejections by kind",
		},
		[]string{"kind"},
	)

	m.formationChanges = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "formation_changes_total",
		Help:      "Total number of applied formation changes",
	})

	m.pricingCalls = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pricing_calls_total",
		Help:      "Total number of cost-curve pricing computations",
	})

	m.totalSquads = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "total_squads",
		Help:      "Total number of squads tracked by the store",
	})

	m.catalogSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_size",
		Help:      "Number of players in the reference catalog",
	})

	m.storeErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_errors_total",
		Help:      "Total number of store errors surfaced to callers",
	})

	m.settingsEdits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "settings_edits_total",
		Help:      "Total number of settings updates applied",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// RecordMutation counts a squad mutation with its outcome
// ("applied", "rejected", or "error").
func RecordMutation(operation, outcome string) {
	globalManager.mutations.WithLabelValues(operation, outcome).Inc()
}

// RecordRejection counts a validation rejection by kind.
func RecordRejection(kind string) {
	globalManager.rejections.WithLabelValues(kind).Inc()
}

// RecordFormationChange increments the formation changes counter.
func RecordFormationChange() {
	globalManager.formationChanges.Inc()
}

// RecordPricingCall increments the pricing computations counter.
func RecordPricingCall() {
	globalManager.pricingCalls.Inc()
}

// UpdateTotalSquads sets the tracked squad count.
func UpdateTotalSquads(count int) {
	globalManager.totalSquads.Set(float64(count))
}

// UpdateCatalogSize sets the player catalog size.
func UpdateCatalogSize(count int) {
	globalManager.catalogSize.Set(float64(count))
}

// RecordStoreError increments the store errors counter.
func RecordStoreError() {
	globalManager.storeErrors.Inc()
}

// RecordSettingsEdit increments the settings edits counter.
func RecordSettingsEdit() {
	globalManager.settingsEdits.Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
