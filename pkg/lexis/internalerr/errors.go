package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrInvalidConfig     = errors.New("invalid configuration")
)
