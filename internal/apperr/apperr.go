// Package apperr defines the error taxonomy shared by every handler and
// service: a request either fails authentication, is denied by policy,
// targets a row or tab that does not exist, carries a malformed body, or
// hits an upstream (Google) failure. Handlers map each kind to exactly one
// HTTP status.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for HTTP mapping and logging.
type Kind int

const (
	// Unauthenticated covers missing, invalid and expired tokens alike.
	Unauthenticated Kind = iota + 1
	// Forbidden means the caller is authenticated but policy denies the action.
	Forbidden
	// NotFound means a row ID or tab was absent at locate time. This is an
	// expected business outcome, not a server failure.
	NotFound
	// Validation means the request body or parameters are malformed.
	Validation
	// Upstream covers identity provider and spreadsheet backend failures.
	Upstream
)

// HTTPStatus returns the status code a handler should respond with.
func (k Kind) HTTPStatus() int {
	switch k {
	case Unauthenticated:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Validation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error carries a user-facing message plus optional diagnostic detail.
// Message is shown directly by the client, so it stays in the language the
// client already displays.
type Error struct {
	Kind    Kind
	Message string
	Details interface{}
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind with a user-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches an underlying cause to a new error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithDetails returns a copy carrying diagnostic detail for the response body.
func (e *Error) WithDetails(details interface{}) *Error {
	clone := *e
	clone.Details = details
	return &clone
}

// KindOf extracts the kind of err, or Upstream when err is not an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return Upstream
}

// As is a convenience wrapper around errors.As for handlers.
func As(err error) (*Error, bool) {
	var appErr *Error
	ok := errors.As(err, &appErr)
	return appErr, ok
}
