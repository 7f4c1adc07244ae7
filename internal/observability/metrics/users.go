package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UsersRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "users_requests_total",
			Help: "Total number of user API requests",
		},
		[]string{"method", "path"},
	)

	UsersRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "users_requests_in_flight",
			Help: "Number of user API requests currently being processed",
		},
	)

	UsersRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "users_request_duration_seconds",
			Help:    "Duration of user API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	UsersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "users_created_total",
			Help: "Total number of users created",
		},
	)

	UserFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "user_fetches_total",
			Help: "Total number of user lookups by result",
		},
		[]string{"result"},
	)

	UserLoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "user_logins_total",
			Help: "Total number of login attempts by result",
		},
		[]string{"result"},
	)

	UserCacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "user_cache_hits_total",
			Help: "Total number of user cache hits",
		},
	)

	UserCacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "user_cache_misses_total",
			Help: "Total number of user cache misses",
		},
	)
)
