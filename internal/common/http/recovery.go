package http

import (
	"net/http"
	"runtime/debug"

	"userapi/internal/common/logger"
)

// RecoveryMiddleware turns handler panics into clean 500 responses. The stack
// is logged at critical with the request's trace id so the crash can be tied
// back to a specific call.
func RecoveryMiddleware(log *logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.WithFields(r.Context(), logger.Fields{
						"method": r.Method,
						"path":   r.URL.Path,
					}).Criticalf("panic recovered: %v\n%s", rec, debug.Stack())
					WriteError(w, http.StatusInternalServerError, "internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
