package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pitchcraft"

// Recorder is what services report to. Nop satisfies it for workers and tests.
type Recorder interface {
	ObserveGeneration(tier, outcome string, duration time.Duration)
	IncQuotaDenial()
	IncBillingEvent(eventType, outcome string)
}

type Metrics struct {
	GenerationsTotal    *prometheus.CounterVec
	GenerationDuration  *prometheus.HistogramVec
	QuotaDenialsTotal   prometheus.Counter
	BillingEventsTotal  *prometheus.CounterVec
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		GenerationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generations_total",
				Help:      "Generation requests by tier and outcome",
			},
			[]string{"tier", "outcome"},
		),
		GenerationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "generation_duration_seconds",
				Help:      "End to end generation latency in seconds",
				Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
			},
			[]string{"tier"},
		),
		QuotaDenialsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quota_denials_total",
				Help:      "Free tier requests denied by the quota policy",
			},
		),
		BillingEventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "billing_events_total",
				Help:      "Billing events by type and outcome",
			},
			[]string{"type", "outcome"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}

	reg.MustRegister(
		m.GenerationsTotal,
		m.GenerationDuration,
		m.QuotaDenialsTotal,
		m.BillingEventsTotal,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
	)
	return m
}

func (m *Metrics) ObserveGeneration(tier, outcome string, duration time.Duration) {
	m.GenerationsTotal.WithLabelValues(tier, outcome).Inc()
	m.GenerationDuration.WithLabelValues(tier).Observe(duration.Seconds())
}

func (m *Metrics) IncQuotaDenial() {
	m.QuotaDenialsTotal.Inc()
}

func (m *Metrics) IncBillingEvent(eventType, outcome string) {
	m.BillingEventsTotal.WithLabelValues(eventType, outcome).Inc()
}

// GinMiddleware records request count and latency per matched route.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

type Nop struct{}

func (Nop) ObserveGeneration(string, string, time.Duration) {}
func (Nop) IncQuotaDenial()                                 {}
func (Nop) IncBillingEvent(string, string)                  {}
