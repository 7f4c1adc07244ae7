package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"userapi/internal/common/constants"
	"userapi/internal/common/logger"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

func TestBuildBaseHandler_SecurityHeaders(t *testing.T) {
	log, _ := logger.New("", "test", "info")
	h := BuildBaseHandler(log, okHandler())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	headers := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "no-referrer",
		"Cache-Control":          "no-store",
	}
	for name, want := range headers {
		if got := rec.Header().Get(name); got != want {
			t.Errorf("expected %s %q, got %q", name, want, got)
		}
	}
	if csp := rec.Header().Get("Content-Security-Policy"); !strings.Contains(csp, "default-src 'none'") {
		t.Errorf("expected restrictive CSP, got %q", csp)
	}
}

func TestBuildBaseHandler_RecoversFromPanic(t *testing.T) {
	log, _ := logger.New("", "test", "error")
	h := BuildBaseHandler(log, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/users/1234", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rec.Code)
	}
	env := decodeTestEnvelope(t, rec)
	if env.Message != "internal server error" {
		t.Errorf("expected generic message, got %s", env.Message)
	}
	if env.Status != "INTERNAL_SERVER_ERROR" {
		t.Errorf("expected status INTERNAL_SERVER_ERROR, got %s", env.Status)
	}
}

func TestTraceIDMiddleware_MintsAndStoresID(t *testing.T) {
	var seen string
	h := TraceIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constants.TraceIDKey).(string)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	header := rec.Header().Get("X-Trace-ID")
	if header == "" {
		t.Fatal("expected trace id header to be set")
	}
	if seen != header {
		t.Errorf("expected context trace id %s, got %s", header, seen)
	}
}

func TestTraceIDMiddleware_AdoptsInboundID(t *testing.T) {
	h := TraceIDMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("X-Trace-ID", "trace-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Trace-ID"); got != "trace-123" {
		t.Errorf("expected trace id trace-123, got %s", got)
	}
}

func TestMaxRequestSizeMiddleware_RejectsOversizedBody(t *testing.T) {
	h := MaxRequestSizeMiddleware(16)(okHandler())

	body := bytes.Repeat([]byte("a"), 17)
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected status 413, got %d", rec.Code)
	}
	env := decodeTestEnvelope(t, rec)
	if env.Status != "REQUEST_ENTITY_TOO_LARGE" {
		t.Errorf("expected status REQUEST_ENTITY_TOO_LARGE, got %s", env.Status)
	}
}

func TestMaxRequestSizeMiddleware_AllowsSmallBody(t *testing.T) {
	h := MaxRequestSizeMiddleware(16)(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader([]byte("ok")))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}
