package httpmetrics

import (
	"fmt"
	"net/http"
	"time"

	"userapi/internal/observability/metrics"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Wrap records request count, in-flight gauge and latency for every request,
// labelled with the normalized path and the status class of the answer.
func Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := NormalizePath(r.URL.Path)

		metrics.UsersRequestsTotal.WithLabelValues(r.Method, path).Inc()
		metrics.UsersRequestsInFlight.Inc()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		metrics.UsersRequestsInFlight.Dec()
		metrics.UsersRequestDurationSeconds.
			WithLabelValues(r.Method, path, fmt.Sprintf("%dxx", rec.status/100)).
			Observe(time.Since(start).Seconds())
	})
}
