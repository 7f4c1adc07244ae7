package http

import (
	"context"
	"net/http"
	"strconv"

	"userapi/internal/common/constants"
	commonerrors "userapi/internal/common/errors"
	"userapi/internal/common/httpmetrics"
	"userapi/internal/common/logger"
	"userapi/internal/observability/metrics"
)

// ErrorHandler translates service failures into wire responses. Domain
// errors answer with their own status and message; anything else becomes a
// 500 with a generic body so internals never leak.
type ErrorHandler struct {
	log *logger.Logger
}

func NewErrorHandler(log *logger.Logger) *ErrorHandler {
	return &ErrorHandler{log: log}
}

func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	if traceID := traceIDFrom(r.Context()); traceID != "" {
		w.Header().Set(traceIDHeader, traceID)
	}

	if domainErr, ok := commonerrors.AsDomainError(err); ok {
		h.writeDomainError(w, r, domainErr)
		return
	}

	h.log.WithFields(r.Context(), logger.Fields{
		"error":  err.Error(),
		"action": "unhandled_error",
	}).Errorf("unhandled error: %v", err)

	countHTTPError(r, http.StatusInternalServerError)
	WriteError(w, http.StatusInternalServerError, "internal server error")
}

func (h *ErrorHandler) writeDomainError(w http.ResponseWriter, r *http.Request, domainErr commonerrors.DomainError) {
	status := domainErr.HTTPStatus()

	if h.log.ShouldLog(logger.DEBUG) {
		h.log.WithFields(r.Context(), logger.Fields{
			"error_code": domainErr.Code(),
			"category":   string(domainErr.Category()),
			"status":     status,
			"action":     "domain_error",
		}).Debugf("domain error: %s", domainErr.Error())
	}

	metrics.DomainErrorsTotal.WithLabelValues(
		string(domainErr.Category()),
		domainErr.Code(),
		strconv.Itoa(status),
	).Inc()
	countHTTPError(r, status)

	WriteError(w, status, domainErr.Message())
}

func countHTTPError(r *http.Request, status int) {
	metrics.HTTPErrorsTotal.WithLabelValues(
		r.Method,
		httpmetrics.NormalizePath(r.URL.Path),
		strconv.Itoa(status),
	).Inc()
}

func traceIDFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value(constants.TraceIDKey).(string); ok {
		return traceID
	}
	return ""
}
