package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	SourceManual    = "manual"
	SourceReference = "reference"
)

var (
	// Registry holds the diary's collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "diet_diary",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "diet_diary",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "route"},
	)

	entriesCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "diet_diary",
			Subsystem: "entries",
			Name:      "created_total",
			Help:      "Calorie entries created, by where the calorie value came from.",
		},
		[]string{"source"},
	)

	entriesDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "diet_diary",
			Subsystem: "entries",
			Name:      "deleted_total",
			Help:      "Calorie entries deleted.",
		},
	)

	lookupMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "diet_diary",
			Subsystem: "foods",
			Name:      "lookup_misses_total",
			Help:      "Create requests without calories whose food was not in the reference table.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		entriesCreated,
		entriesDeleted,
		lookupMisses,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler exposes the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request count and latency per matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		httpRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

func RecordEntryCreated(source string) {
	entriesCreated.WithLabelValues(source).Inc()
}

func RecordEntryDeleted() {
	entriesDeleted.Inc()
}

func RecordLookupMiss() {
	lookupMisses.Inc()
}
