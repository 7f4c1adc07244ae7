package http

import "strings"

// ExtractUserIDFromPath pulls the id segment out of /users/{id}. Ids are
// opaque strings assigned by the store, so no format check is applied.
func ExtractUserIDFromPath(path string) (string, bool) {
	const prefix = "/users/"

	if !strings.HasPrefix(path, prefix) {
		return "", false
	}

	remaining := strings.TrimPrefix(path, prefix)
	parts := strings.Split(remaining, "/")
	if len(parts) != 1 || parts[0] == "" {
		return "", false
	}

	return parts[0], true
}
