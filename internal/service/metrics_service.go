package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the console.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	listCacheHits   *prometheus.CounterVec
	listCacheMisses *prometheus.CounterVec
}

// NewMetricsService registers the console's Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	listCacheHits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "list_cache_hits_total",
		Help: "List page cache hits by resource",
	}, []string{"resource"})

	listCacheMisses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "list_cache_misses_total",
		Help: "List page cache misses by resource",
	}, []string{"resource"})

	registry.MustRegister(requestDuration, requestTotal, listCacheHits, listCacheMisses)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		listCacheHits:   listCacheHits,
		listCacheMisses: listCacheMisses,
	}
}

// Handler exposes the Prometheus scrape endpoint.
func (m *MetricsService) Handler() http.Handler {
	return m.handler
}

// ObserveHTTPRequest records one served request.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := []string{method, path, strconv.Itoa(status)}
	m.requestDuration.WithLabelValues(labels...).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(labels...).Inc()
}

// ObserveListFetch records a list-cache outcome for a resource.
func (m *MetricsService) ObserveListFetch(resource string, hit bool) {
	if hit {
		m.listCacheHits.WithLabelValues(resource).Inc()
		return
	}
	m.listCacheMisses.WithLabelValues(resource).Inc()
}
