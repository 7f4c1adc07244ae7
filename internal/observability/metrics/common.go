package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cross-cutting counters shared by the middleware stack. Label order is
// method, path, status everywhere so dashboards can join on the same keys.
var (
	HTTPErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_errors_total",
			Help: "Total number of error responses written, by method, path and status",
		},
		[]string{"method", "path", "status"},
	)

	DomainErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "domain_errors_total",
			Help: "Total number of domain failures surfaced to clients",
		},
		[]string{"category", "code", "status"},
	)

	RateLimitBlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limit_blocked_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"path", "limiter"},
	)
)
