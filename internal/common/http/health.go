package http

import (
	"net/http"

	"userapi/internal/common/logger"
)

// HealthHandler answers liveness probes. Probes arrive every few seconds, so
// hits are logged at debug to keep them out of production logs.
func HealthHandler(log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		log.Debugf("health probe from %s", GetClientIP(r))
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
