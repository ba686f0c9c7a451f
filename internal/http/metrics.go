package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los contadores Prometheus del servicio HTTP.
// Usa un registry propio para no exponer las metricas default de Go.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	journalsProcessed   prometheus.Counter
	journalsRateLimited prometheus.Counter
}

// NewMetrics crea y registra las metricas en un registry dedicado.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	auto := promauto.With(registry)

	return &Metrics{
		registry: registry,
		httpRequests: auto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "oracle",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),
		httpRequestDuration: auto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "oracle",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds by route and method",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		journalsProcessed: auto.NewCounter(prometheus.CounterOpts{
			Namespace: "oracle",
			Subsystem: "journal",
			Name:      "entries_processed_total",
			Help:      "Total number of journal entries scored and persisted",
		}),
		journalsRateLimited: auto.NewCounter(prometheus.CounterOpts{
			Namespace: "oracle",
			Subsystem: "journal",
			Name:      "entries_rate_limited_total",
			Help:      "Total number of journal entries rejected by the rate limiter",
		}),
	}
}

// Middleware registra cada request con su ruta, metodo, status y duracion.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.httpRequests.WithLabelValues(route, c.Request.Method, status).Inc()
		m.httpRequestDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// Handler expone el registry en formato Prometheus para GET /metrics.
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// RecordJournalProcessed incrementa el contador de entradas procesadas.
func (m *Metrics) RecordJournalProcessed() {
	if m == nil {
		return
	}
	m.journalsProcessed.Inc()
}

// RecordJournalRateLimited incrementa el contador de entradas rechazadas.
func (m *Metrics) RecordJournalRateLimited() {
	if m == nil {
		return
	}
	m.journalsRateLimited.Inc()
}
