package http

import (
	"net/http"

	"userapi/internal/common/constants"
	"userapi/internal/common/httpmetrics"
	"userapi/internal/common/logger"
)

// BuildBaseHandler wraps handler in the common middleware stack, innermost
// first: request metrics, body size cap, trace ids, panic recovery and
// security headers.
func BuildBaseHandler(log *logger.Logger, handler http.Handler) http.Handler {
	wrapped := httpmetrics.Wrap(handler)
	wrapped = MaxRequestSizeMiddleware(constants.DefaultMaxRequestSize)(wrapped)
	wrapped = TraceIDMiddleware(wrapped)
	wrapped = RecoveryMiddleware(log)(wrapped)
	wrapped = SecurityHeadersMiddleware(wrapped)
	return wrapped
}
