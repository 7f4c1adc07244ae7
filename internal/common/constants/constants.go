package constants

import "time"

const (
	DefaultMaxRequestSize = 1 << 20

	UserCacheTTL             = 5 * time.Minute
	UserCacheCleanupInterval = 1 * time.Minute

	DBPoolMaxOpenConns    = 25
	DBPoolMinOpenConns    = 5
	DBPoolConnMaxLifetime = time.Hour
	DBPoolConnMaxIdleTime = 30 * time.Minute
	DBPoolHealthCheck     = time.Minute
	DBPoolConnectTimeout  = 5 * time.Second
	DBPoolMaxAttempts     = 10
	DBPoolRetryDelay      = time.Second
	DBPoolMetricsInterval = 30 * time.Second

	ServerReadHeaderTimeout = 10 * time.Second
	ServerReadTimeout       = 30 * time.Second
	ServerWriteTimeout      = 30 * time.Second
	ServerIdleTimeout       = 120 * time.Second

	ShutdownTimeout = 30 * time.Second
	DrainTimeout    = 10 * time.Second

	RateLimitCleanupInterval = 5 * time.Minute

	RateLimitLoginRequestsPerSecond   = 1
	RateLimitLoginBurst               = 5
	RateLimitCreateRequestsPerSecond  = 2
	RateLimitCreateBurst              = 5
	RateLimitGeneralRequestsPerSecond = 50
	RateLimitGeneralBurst             = 100

	DefaultUsersHTTPPort       = "8080"
	DefaultUsersRequestTimeout = 5 * time.Second

	LoggerMaxSize    = 100
	LoggerMaxBackups = 3
	LoggerMaxAge     = 28

	BcryptCost = 12
)

type TraceIDKeyType string

const TraceIDKey TraceIDKeyType = "trace_id"
