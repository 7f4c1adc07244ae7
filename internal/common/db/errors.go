package db

import (
	"errors"
	"fmt"
	"time"

	pgx "github.com/jackc/pgx/v4"

	"userapi/internal/observability/metrics"
)

const usersTable = "users"

// Observe records the duration of a finished statement. Call it with the
// operation's start time regardless of outcome.
func Observe(operation string, start time.Time) {
	metrics.DBQueryDurationSeconds.
		WithLabelValues(operation, usersTable).
		Observe(time.Since(start).Seconds())
}

// QueryError finalizes a row query: the duration is always recorded, a
// missing row maps onto notFound, and any other failure is counted and
// wrapped with the operation name.
func QueryError(err, notFound error, operation string, start time.Time) error {
	Observe(operation, start)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return notFound
	default:
		return countAndWrap(err, operation)
	}
}

// ExecError finalizes a statement that returns no rows.
func ExecError(err error, operation string, start time.Time) error {
	Observe(operation, start)

	if err == nil {
		return nil
	}
	return countAndWrap(err, operation)
}

func countAndWrap(err error, operation string) error {
	metrics.DBQueryErrors.
		WithLabelValues(operation, usersTable, fmt.Sprintf("%T", err)).
		Inc()
	return fmt.Errorf("failed to %s: %w", operation, err)
}
