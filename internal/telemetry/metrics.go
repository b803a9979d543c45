package telemetry

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Исходы запроса к upstream.
const (
	OutcomeOK          = "ok"
	OutcomeError       = "error"
	OutcomeHTTPStatus  = "http_status"
	OutcomeInvalidBody = "invalid_body"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kamermoties_http_requests_total",
		Help: "Total HTTP requests handled by kamermoties_api",
	}, []string{"method", "route", "status"})

	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kamermoties_upstream_requests_total",
		Help: "Total requests sent to the OData API",
	}, []string{"entity", "outcome"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kamermoties_upstream_request_duration_seconds",
		Help:    "Duration of requests sent to the OData API",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"entity"})
)

// ObserveHTTPRequest учитывает обработанный входящий запрос.
func ObserveHTTPRequest(method, route string, status int) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// ObserveUpstream учитывает запрос к upstream и его длительность.
func ObserveUpstream(entity, outcome string, d time.Duration) {
	upstreamRequests.WithLabelValues(entity, outcome).Inc()
	upstreamDuration.WithLabelValues(entity).Observe(d.Seconds())
}
