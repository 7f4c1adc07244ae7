package db

import (
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"userapi/internal/common/constants"
	"userapi/internal/observability/metrics"
)

// StartPoolMetrics samples the pool state on a fixed interval for the
// db_pool_connections gauge.
func StartPoolMetrics(pool *pgxpool.Pool, interval time.Duration) {
	if interval <= 0 {
		interval = constants.DBPoolMetricsInterval
	}

	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			stats := pool.Stat()
			metrics.DBPoolConnections.WithLabelValues("acquired").Set(float64(stats.AcquiredConns()))
			metrics.DBPoolConnections.WithLabelValues("idle").Set(float64(stats.IdleConns()))
			metrics.DBPoolConnections.WithLabelValues("max").Set(float64(stats.MaxConns()))
			metrics.DBPoolConnections.WithLabelValues("total").Set(float64(stats.TotalConns()))
		}
	}()
}
