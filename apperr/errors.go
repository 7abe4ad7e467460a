package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error into one of the HTTP-flavored categories used
// across Folio services.
type Kind int

const (
	// KindInternal indicates an unexpected server-side failure.
	// HTTP equivalent: 500 Internal Server Error
	KindInternal Kind = iota

	// KindBadRequest indicates the request body or parameters are invalid.
	// HTTP equivalent: 400 Bad Request
	KindBadRequest

	// KindUnauthorized indicates missing or invalid authentication credentials.
	// HTTP equivalent: 401 Unauthorized
	KindUnauthorized

	// KindForbidden indicates the authenticated caller lacks permission.
	// HTTP equivalent: 403 Forbidden
	KindForbidden

	// KindNotFound indicates the requested resource does not exist.
	// HTTP equivalent: 404 Not Found
	KindNotFound
)

// statusCodes maps each kind to its default HTTP status code.
var statusCodes = map[Kind]int{
	KindInternal:     http.StatusInternalServerError,
	KindBadRequest:   http.StatusBadRequest,
	KindUnauthorized: http.StatusUnauthorized,
	KindForbidden:    http.StatusForbidden,
	KindNotFound:     http.StatusNotFound,
}

// String returns the canonical name of the kind (e.g. "not_found").
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// StatusCode returns the default HTTP status code for the kind.
// Unknown kinds map to 500.
func (k Kind) StatusCode() int {
	if code, ok := statusCodes[k]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// Error is the tagged-variant error type carried between Folio services.
// It holds a kind, a human-readable message, and an optional wrapped cause.
type Error struct {
	// Kind is the error category, which determines the HTTP status code.
	Kind Kind

	// Message is the human-readable error message.
	Message string

	// Err is the optional underlying cause.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind. This lets
// callers match on category with errors.Is without comparing messages.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// StatusCode returns the HTTP status code for this error's kind.
func (e *Error) StatusCode() int {
	return e.Kind.StatusCode()
}

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an error of the given kind with an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// BadRequest creates a 400-kind error.
func BadRequest(message string) *Error {
	return New(KindBadRequest, message)
}

// Unauthorized creates a 401-kind error.
func Unauthorized(message string) *Error {
	return New(KindUnauthorized, message)
}

// Forbidden creates a 403-kind error.
func Forbidden(message string) *Error {
	return New(KindForbidden, message)
}

// NotFound creates a 404-kind error.
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Internal creates a 500-kind error.
func Internal(message string) *Error {
	return New(KindInternal, message)
}

// KindOf extracts the kind from an error chain. The second return value
// reports whether an *Error was found.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return KindInternal, false
}

// StatusOf returns the HTTP status code for any error. Errors that are not
// *Error values map to 500.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode()
	}
	return http.StatusInternalServerError
}
