package response

import (
	"net/http"
	"strings"
)

// StatusName returns the upper-snake name of an HTTP status code, the form
// the envelope's status field carries on the wire ("OK", "CREATED",
// "BAD_REQUEST", ...).
func StatusName(code int) string {
	switch code {
	case http.StatusOK:
		return "OK"
	case http.StatusCreated:
		return "CREATED"
	case http.StatusNoContent:
		return "NO_CONTENT"
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusRequestEntityTooLarge:
		return "REQUEST_ENTITY_TOO_LARGE"
	case http.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	case http.StatusInternalServerError:
		return "INTERNAL_SERVER_ERROR"
	case http.StatusServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	}

	text := http.StatusText(code)
	if text == "" {
		return "UNKNOWN"
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
