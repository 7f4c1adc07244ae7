package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"userapi/internal/common/constants"
)

const traceIDHeader = "X-Trace-ID"

// TraceIDMiddleware adopts the caller's X-Trace-ID or mints one, echoes it
// on the response and stores it in the request context for log correlation.
func TraceIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		w.Header().Set(traceIDHeader, traceID)

		ctx := context.WithValue(r.Context(), constants.TraceIDKey, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
