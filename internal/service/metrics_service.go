package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API and the
// slot engine.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	slotGenerations prometheus.Counter
	slotsEmitted    prometheus.Counter
	refreshTotal    *prometheus.CounterVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
}

// NewMetricsService registers the service's Prometheus collectors.
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

	slotGenerations := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "slot_generations_total",
		Help: "Total slot grid computations",
	})

	slotsEmitted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "slots_emitted_total",
		Help: "Total slots produced across all generations",
	})

	refreshTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_refreshes_total",
		Help: "Schedule snapshot refreshes by outcome",
	}, []string{"outcome"})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "slot_cache_hits_total",
		Help: "Slot cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "slot_cache_misses_total",
		Help: "Slot cache misses",
	})

	registry.MustRegister(requestDuration, requestTotal, slotGenerations, slotsEmitted, refreshTotal, cacheHits, cacheMisses)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		slotGenerations: slotGenerations,
		slotsEmitted:    slotsEmitted,
		refreshTotal:    refreshTotal,
		cacheHits:       cacheHits,
		cacheMisses:     cacheMisses,
	}
}

// Handler exposes the Prometheus scrape endpoint.
func (m *MetricsService) Handler() http.Handler {
	return m.handler
}

// ObserveHTTPRequest records one completed HTTP request.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := []string{method, path, fmt.Sprintf("%d", status)}
	m.requestDuration.WithLabelValues(labels...).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(labels...).Inc()
}

// ObserveSlotGeneration records one slot grid computation.
func (m *MetricsService) ObserveSlotGeneration(slotCount int) {
	m.slotGenerations.Inc()
	m.slotsEmitted.Add(float64(slotCount))
}

// ObserveRefresh records a snapshot refresh outcome.
func (m *MetricsService) ObserveRefresh(fromStorage bool) {
	outcome := "stored"
	if !fromStorage {
		outcome = "fallback"
	}
	m.refreshTotal.WithLabelValues(outcome).Inc()
}

// ObserveCache records a slot cache lookup result.
func (m *MetricsService) ObserveCache(hit bool) {
	if hit {
		m.cacheHits.Inc()
		return
	}
	m.cacheMisses.Inc()
}
