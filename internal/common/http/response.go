package http

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"time"

	"userapi/internal/common/response"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteEnvelope writes env with the HTTP status it was built for.
func WriteEnvelope(w http.ResponseWriter, env response.Envelope) {
	WriteJSON(w, env.HTTPStatus(), env)
}

// WriteError writes a bare envelope: message plus the status name, no data.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteEnvelope(w, response.New(status, message))
}

func DecodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// GetClientIP resolves the caller's address, preferring the headers set by
// the ingress. An X-Forwarded-For chain names the client in its first hop.
func GetClientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}

	if chain := r.Header.Get("X-Forwarded-For"); chain != "" {
		if idx := strings.Index(chain, ","); idx != -1 {
			chain = chain[:idx]
		}
		return strings.TrimSpace(chain)
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// RequireMethod rejects every verb except method with a 405 before the
// handler runs.
func RequireMethod(method string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Method != method {
				WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
				return
			}
			next(w, r)
		}
	}
}

// WithTimeout caps the request context so a stuck store cannot hold the
// connection open indefinitely.
func WithTimeout(timeout time.Duration) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			next(w, r.WithContext(ctx))
		}
	}
}
