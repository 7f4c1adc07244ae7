package service

import (
	"userapi/internal/observability/metrics"
)

func incrementUsersCreated() {
	metrics.UsersCreatedTotal.Inc()
}

func recordUserFetch(result string) {
	metrics.UserFetchesTotal.WithLabelValues(result).Inc()
}

func recordUserLogin(result string) {
	metrics.UserLoginsTotal.WithLabelValues(result).Inc()
}
