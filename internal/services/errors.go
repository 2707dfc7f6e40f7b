package services

import (
	"errors"
	"fmt"
)

var (
	ErrUserNameRequired = errors.New("user name is required")
	ErrDateRequired     = errors.New("date is required")
	ErrTimeRequired     = errors.New("time is required")

	ErrRemoteUnavailable = errors.New("remote store unavailable")
)

// Operation contexts used when surfacing a failure to the caller.
const (
	OpLoad   = "load failed"
	OpSave   = "save failed"
	OpDelete = "delete failed"
)

// operationError is the single place user-visible error messages are
// assembled from an operation context and the underlying cause.
func operationError(operation string, err error) error {
	return fmt.Errorf("%s: %w", operation, err)
}

// IsValidationError reports whether the error was raised by input
// validation before any remote call was made.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrUserNameRequired) ||
		errors.Is(err, ErrDateRequired) ||
		errors.Is(err, ErrTimeRequired)
}
