// Package metrics provides Prometheus metrics for the assessment service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Domain metrics
	applicationsScored *prometheus.CounterVec
	submissionsGraded  *prometheus.CounterVec
	analyticsBuilt     prometheus.Counter

	// Aggregate refresh metrics
	refreshesProcessed prometheus.Counter
	refreshesCoalesced prometheus.Counter
	refreshErrors      prometheus.Counter

	// Operational health metrics
	queueSize         prometheus.Gauge
	queueCapacity     prometheus.Gauge
	workerCount       prometheus.Gauge
	totalAssessments  prometheus.Gauge
	totalApplications prometheus.Gauge
	totalSubmissions  prometheus.Gauge

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "jobassessment",
		subsystem:        "api",
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

	m.applicationsScored = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "applications_scored_total",
		Help:      "Applications match-scored, labeled by outcome.",
	}, []string{"outcome"})

	m.submissionsGraded = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "submissions_graded_total",
		Help:      "Submissions graded, labeled by result.",
	}, []string{"result"})

	m.analyticsBuilt = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analytics_reports_total",
		Help:      "Analytics reports assembled.",
	})

	m.refreshesProcessed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refreshes_processed_total",
		Help:      "Aggregate refresh events processed by workers.",
	})

	m.refreshesCoalesced = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refreshes_coalesced_total",
		Help:      "Refresh requests merged into an already pending refresh.",
	})

	m.refreshErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refresh_errors_total",
		Help:      "Aggregate refreshes that failed.",
	})

	m.queueSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refresh_queue_size",
		Help:      "Current number of queued refresh events.",
	})

	m.queueCapacity = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refresh_queue_capacity",
		Help:      "Configured capacity of the refresh queue.",
	})

	m.workerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refresh_workers",
		Help:      "Number of refresh workers.",
	})

	m.totalAssessments = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "assessments_total",
		Help:      "Assessments currently stored.",
	})

	m.totalApplications = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "applications_total",
		Help:      "Applications currently stored.",
	})

	m.totalSubmissions = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "submissions_total",
		Help:      "Submissions currently stored.",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method and status code.",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds.",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})
}

// RecordApplicationScored increments the scored-applications counter for an outcome.
func RecordApplicationScored(outcome string) {
	globalManager.applicationsScored.WithLabelValues(outcome).Inc()
}

// RecordSubmissionGraded increments the graded-submissions counter for a result.
func RecordSubmissionGraded(result string) {
	globalManager.submissionsGraded.WithLabelValues(result).Inc()
}

// RecordAnalyticsBuilt increments the analytics reports counter.
func RecordAnalyticsBuilt() {
	globalManager.analyticsBuilt.Inc()
}

// RecordRefreshProcessed increments the processed refreshes counter.
func RecordRefreshProcessed() {
	globalManager.refreshesProcessed.Inc()
}

// RecordRefreshCoalesced increments the coalesced refreshes counter.
func RecordRefreshCoalesced() {
	globalManager.refreshesCoalesced.Inc()
}

// RecordRefreshError increments the refresh errors counter.
func RecordRefreshError() {
	globalManager.refreshErrors.Inc()
}

// UpdateQueueSize sets the current refresh queue size.
func UpdateQueueSize(size int) {
	globalManager.queueSize.Set(float64(size))
}

// UpdateQueueCapacity sets the refresh queue capacity.
func UpdateQueueCapacity(capacity int) {
	globalManager.queueCapacity.Set(float64(capacity))
}

// UpdateWorkerCount sets the current worker count.
func UpdateWorkerCount(count int) {
	globalManager.workerCount.Set(float64(count))
}

// UpdateTotalAssessments sets the stored assessments gauge.
func UpdateTotalAssessments(count int) {
	globalManager.totalAssessments.Set(float64(count))
}

// UpdateTotalApplications sets the stored applications gauge.
func UpdateTotalApplications(count int) {
	globalManager.totalApplications.Set(float64(count))
}

// UpdateTotalSubmissions sets the stored submissions gauge.
func UpdateTotalSubmissions(count int) {
	globalManager.totalSubmissions.Set(float64(count))
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// GetRegistry returns the registry metrics are collected in.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
