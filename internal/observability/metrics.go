package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the prometheus instruments for the API surface.
type Metrics struct {
	requests        *prometheus.CounterVec
	latency         *prometheus.HistogramVec
	inflight        prometheus.Gauge
	recommendations prometheus.Counter
	candidates      prometheus.Histogram
	searches        prometheus.Counter
}

func NewMetrics() *Metrics {
	return &Metrics{
		requests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "picklematch_http_requests_total",
			Help: "HTTP requests by route and status code.",
		}, []string{"method", "route", "status"}),
		latency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "picklematch_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		inflight: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "picklematch_http_requests_inflight",
			Help: "In-flight HTTP requests.",
		}),
		recommendations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "picklematch_recommendations_total",
			Help: "Recommendation requests served.",
		}),
		candidates: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "picklematch_recommendation_candidates",
			Help:    "Candidates surviving hard filters per recommendation request.",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		}),
		searches: promauto.NewCounter(prometheus.CounterOpts{
			Name: "picklematch_searches_total",
			Help: "Fuzzy search requests served.",
		}),
	}
}

// Middleware records request counts and latency per route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.inflight.Inc()
		c.Next()
		m.inflight.Dec()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.requests.WithLabelValues(c.Request.Method, route, status).Inc()
		m.latency.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) ObserveRecommendation(totalMatching int) {
	m.recommendations.Inc()
	m.candidates.Observe(float64(totalMatching))
}

func (m *Metrics) ObserveSearch() {
	m.searches.Inc()
}

// Handler exposes the default prometheus registry, mounted at /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.Handler()
}
