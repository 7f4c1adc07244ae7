package httpmetrics

import (
	"regexp"
	"strings"
)

var uuidRegex = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

// NormalizePath collapses request paths into low-cardinality metric labels.
// User ids are opaque strings, so any single segment under /users/ other
// than the login route becomes /users/{id}. Elsewhere uuid-shaped and
// numeric segments are replaced with {param}.
func NormalizePath(path string) string {
	if path == "" {
		return "/"
	}

	if strings.HasPrefix(path, "/users/") {
		rest := strings.TrimPrefix(path, "/users/")
		if rest != "" && rest != "login" && !strings.Contains(rest, "/") {
			return "/users/{id}"
		}
	}

	normalized := uuidRegex.ReplaceAllString(path, "{param}")

	parts := strings.Split(normalized, "/")
	for i, part := range parts {
		if part != "" && (strings.HasPrefix(part, "{") || isNumeric(part)) {
			parts[i] = "{param}"
		}
	}

	result := strings.Join(parts, "/")
	if result == "" {
		return "/"
	}

	return result
}

func isNumeric(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
