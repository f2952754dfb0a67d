package apperr

import (
	"errors"
	"net/http"
)

// Error kinds shared by all services. Handlers translate these into HTTP
// statuses; anything else is reported as a generic internal error so store
// and hashing details never reach clients.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Validation wraps a field-level message in the validation kind.
func Validation(msg string) error {
	return &kindError{kind: ErrValidation, msg: msg}
}

// Unauthorized wraps a message in the unauthorized kind.
func Unauthorized(msg string) error {
	return &kindError{kind: ErrUnauthorized, msg: msg}
}

// NotFound wraps a message in the not-found kind.
func NotFound(msg string) error {
	return &kindError{kind: ErrNotFound, msg: msg}
}

// Conflict wraps a message in the conflict kind.
func Conflict(msg string) error {
	return &kindError{kind: ErrConflict, msg: msg}
}

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// Status maps an error to the HTTP status its kind warrants.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message for an error. Internal failures
// collapse to a fixed string.
func Message(err error) string {
	if Status(err) == http.StatusInternalServerError {
		return "Internal Server Error"
	}
	return err.Error()
}
