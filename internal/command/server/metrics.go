package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics 使用独立的 registry，同一进程可以创建多个 handler。
type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	issues   *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tsconfig_helper_requests_total",
				Help: "Total number of API requests",
			},
			[]string{"route", "method", "code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tsconfig_helper_request_duration_seconds",
				Help:    "API request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		issues: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tsconfig_helper_validate_issues_total",
				Help: "Total number of issues reported by /validate",
			},
			[]string{"severity"},
		),
	}

	m.registry.MustRegister(
		m.requests,
		m.duration,
		m.issues,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// instrument 为 route 记录请求数与耗时。
func (m *metrics) instrument(route string, h http.HandlerFunc) http.Handler {
	labels := prometheus.Labels{"route": route}

	return promhttp.InstrumentHandlerDuration(
		m.duration.MustCurryWith(labels),
		promhttp.InstrumentHandlerCounter(m.requests.MustCurryWith(labels), h),
	)
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
