package commonerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCategory groups domain errors for metrics and logging. The values
// mirror the failure classes of the user operations.
type ErrorCategory string

const (
	CategoryValidation   ErrorCategory = "VALIDATION"
	CategoryNotFound     ErrorCategory = "NOT_FOUND"
	CategoryConflict     ErrorCategory = "CONFLICT"
	CategoryUnauthorized ErrorCategory = "UNAUTHORIZED"
)

// DomainError is a failure that already knows how to present itself on the
// wire: a stable code, a category, the HTTP status to answer with and the
// message to put in the response body. Services return these; the HTTP layer
// translates anything else into a 500. Message stays fixed when a cause is
// attached, so internals never reach the response body.
type DomainError interface {
	error
	Code() string
	Category() ErrorCategory
	HTTPStatus() int
	Message() string
	Unwrap() error
	WithCause(cause error) DomainError
}

type domainError struct {
	code     string
	category ErrorCategory
	status   int
	message  string
	cause    error
}

func NewDomainError(code string, category ErrorCategory, status int, message string) DomainError {
	return &domainError{
		code:     code,
		category: category,
		status:   status,
		message:  message,
	}
}

func (e *domainError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *domainError) Code() string            { return e.code }
func (e *domainError) Category() ErrorCategory { return e.category }
func (e *domainError) HTTPStatus() int         { return e.status }
func (e *domainError) Message() string         { return e.message }
func (e *domainError) Unwrap() error           { return e.cause }

func (e *domainError) WithCause(cause error) DomainError {
	return &domainError{
		code:     e.code,
		category: e.category,
		status:   e.status,
		message:  e.message,
		cause:    cause,
	}
}

func IsDomainError(err error) bool {
	_, ok := AsDomainError(err)
	return ok
}

func AsDomainError(err error) (DomainError, bool) {
	var de DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// ErrMissingUserID rejects user routes called without an id segment.
var ErrMissingUserID = NewDomainError(
	"MISSING_USER_ID",
	CategoryValidation,
	http.StatusBadRequest,
	"user_id is required",
)
