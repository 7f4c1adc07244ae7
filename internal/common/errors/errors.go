package commonerrors

import "errors"

var (
	ErrMissingRequiredEnv = errors.New("missing required environment variable")
	ErrInvalidConfig      = errors.New("invalid configuration")
)
