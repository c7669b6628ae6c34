package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	analysesTotal   *prometheus.CounterVec
	flaggedTotal    prometheus.Counter
	cacheHitsTotal  prometheus.Counter
	analyzeDuration prometheus.Histogram
}

func New(service string) *Metrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "invintel",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "invintel",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	analysesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "invintel",
			Subsystem: "pipeline",
			Name:      "analyses_total",
			Help:      "Completed pipeline runs by document class and decision.",
		},
		[]string{"service", "doc_class", "decision"},
	)
	flaggedTotal := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace:   "invintel",
			Subsystem:   "pipeline",
			Name:        "flagged_total",
			Help:        "Analyses that produced a flagged record.",
			ConstLabels: prometheus.Labels{"service": service},
		},
	)
	cacheHitsTotal := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace:   "invintel",
			Subsystem:   "pipeline",
			Name:        "cache_hits_total",
			Help:        "Analyses served from the result cache.",
			ConstLabels: prometheus.Labels{"service": service},
		},
	)
	analyzeDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace:   "invintel",
			Subsystem:   "pipeline",
			Name:        "duration_seconds",
			Help:        "Pipeline execution duration in seconds.",
			Buckets:     []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
			ConstLabels: prometheus.Labels{"service": service},
		},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		analysesTotal,
		flaggedTotal,
		cacheHitsTotal,
		analyzeDuration,
	)

	return &Metrics{
		registry:        registry,
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		analysesTotal:   analysesTotal,
		flaggedTotal:    flaggedTotal,
		cacheHitsTotal:  cacheHitsTotal,
		analyzeDuration: analyzeDuration,
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request count and latency per method/path/status.
func (m *Metrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			r.URL.Path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

// RecordAnalysis tracks one completed pipeline run.
func (m *Metrics) RecordAnalysis(service, docClass, decision string, flagged bool, elapsed time.Duration) {
	m.analysesTotal.WithLabelValues(service, docClass, decision).Inc()
	m.analyzeDuration.Observe(elapsed.Seconds())
	if flagged {
		m.flaggedTotal.Inc()
	}
}

func (m *Metrics) RecordCacheHit() {
	m.cacheHitsTotal.Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}
