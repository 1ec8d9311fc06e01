package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "hostel"

var (
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "request_duration_seconds",
			Help:      "Duration of API requests in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route", "code"},
	)

	requestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"method", "route", "code"},
	)

	requestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "requests_in_flight",
			Help:      "Number of API requests currently being served",
		},
		[]string{"method", "route"},
	)

	responseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "response_size_bytes",
			Help:      "Size of API responses in bytes",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 7),
		},
		[]string{"method", "route"},
	)

	recordsWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "records_written_total",
			Help:      "Total number of committed record writes",
		},
		[]string{"entity", "operation"},
	)

	authFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "auth_failures_total",
			Help:      "Requests rejected by the bearer token gate",
		},
		[]string{"reason"},
	)
)

// infrastructurePaths are probe and scrape endpoints. They are neither
// measured nor traced.
var infrastructurePaths = []string{"/health", "/ready", "/metrics", "/favicon.ico"}

func isInfrastructurePath(path string) bool {
	for _, prefix := range infrastructurePaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// RecordWrite counts one committed create, update or delete of entity.
func RecordWrite(entity, operation string) {
	recordsWritten.WithLabelValues(entity, operation).Inc()
}

// recordAuthFailure counts a request turned away by AuthMiddleware.
func recordAuthFailure(reason string) {
	authFailures.WithLabelValues(reason).Inc()
}

// PrometheusMiddleware records rate, errors and duration per route template,
// so /users/1 and /users/2 share a series.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isInfrastructurePath(c.Request.URL.Path) {
			c.Next()
			return
		}

		method := c.Request.Method
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		inFlight := requestsInFlight.WithLabelValues(method, route)
		inFlight.Inc()
		defer inFlight.Dec()

		start := time.Now()
		c.Next()

		code := strconv.Itoa(c.Writer.Status())
		requestDuration.WithLabelValues(method, route, code).Observe(time.Since(start).Seconds())
		requestTotal.WithLabelValues(method, route, code).Inc()
		if size := c.Writer.Size(); size > 0 {
			responseSize.WithLabelValues(method, route).Observe(float64(size))
		}
	}
}
