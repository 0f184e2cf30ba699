package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails validation
// (e.g. malformed email, name too long).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrCapacityExceeded is returned when a trip already holds max_people registrations.
var ErrCapacityExceeded = errors.New("maximum of trip members has been reached")

// ErrDuplicateRegistration is returned when the store rejects a registration
// because the client is already registered on the trip.
var ErrDuplicateRegistration = errors.New("client is already registered on the trip")

// NotFoundError carries the caller-facing message for a missing resource.
// It matches ErrNotFound under errors.Is, so callers can branch on the sentinel
// and still recover the message with errors.As.
type NotFoundError struct {
	Message string
}

// NotFound builds a *NotFoundError with a formatted message.
func NotFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

func (e *NotFoundError) Error() string { return e.Message }

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
