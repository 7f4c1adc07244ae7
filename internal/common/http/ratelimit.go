package http

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"userapi/internal/common/constants"
	"userapi/internal/common/httpmetrics"
	"userapi/internal/observability/metrics"
)

// RateLimiter keeps one token bucket per client key. Buckets that have
// refilled completely are dropped by a background sweep so idle clients do
// not accumulate.
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
	cleanup  *time.Ticker
}

func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		cleanup:  time.NewTicker(constants.RateLimitCleanupInterval),
	}

	go rl.cleanupLimiters()

	return rl
}

func (rl *RateLimiter) cleanupLimiters() {
	for range rl.cleanup.C {
		rl.mu.Lock()
		for key, limiter := range rl.limiters {
			if limiter.Allow() {
				delete(rl.limiters, key)
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.RLock()
	limiter, exists := rl.limiters[key]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		limiter, exists = rl.limiters[key]
		if !exists {
			limiter = rate.NewLimiter(rl.rate, rl.burst)
			rl.limiters[key] = limiter
		}
		rl.mu.Unlock()
	}

	return limiter
}

func (rl *RateLimiter) Allow(key string) bool {
	return rl.getLimiter(key).Allow()
}

// StrictRateLimiter applies a tighter budget to the credential endpoints
// than to the rest of the API. Keys are client IPs.
type StrictRateLimiter struct {
	login   *RateLimiter
	create  *RateLimiter
	general *RateLimiter
}

func NewStrictRateLimiter() *StrictRateLimiter {
	return &StrictRateLimiter{
		login:   NewRateLimiter(constants.RateLimitLoginRequestsPerSecond, constants.RateLimitLoginBurst),
		create:  NewRateLimiter(constants.RateLimitCreateRequestsPerSecond, constants.RateLimitCreateBurst),
		general: NewRateLimiter(constants.RateLimitGeneralRequestsPerSecond, constants.RateLimitGeneralBurst),
	}
}

func (srl *StrictRateLimiter) limiterFor(path string) (*RateLimiter, string) {
	switch path {
	case "/users/login":
		return srl.login, "login"
	case "/users":
		return srl.create, "create"
	}
	return srl.general, "general"
}

// Middleware enforces the per-path budgets. Probe endpoints are exempt so
// health checks and scrapes are never throttled.
func (srl *StrictRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" || r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		limiter, limiterType := srl.limiterFor(r.URL.Path)
		if !limiter.Allow(GetClientIP(r)) {
			metrics.RateLimitBlocked.WithLabelValues(httpmetrics.NormalizePath(r.URL.Path), limiterType).Inc()
			WriteError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}
