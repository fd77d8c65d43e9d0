package apperr

import (
	"errors"
	"net/http"
)

// Kind tags an error with its API-level category.
type Kind uint8

const (
	KindInternal Kind = iota
	KindMissingParameter
	KindInvalidInput
	KindInvalidFormat
	KindNotFound
	KindUnauthorized
)

// Error is the tagged error returned by application services. Handlers map
// it to a status code at the boundary; Message is safe to show clients.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the Kind from err; untagged errors are internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error to its transport status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindMissingParameter, KindInvalidInput, KindInvalidFormat:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message returns a client-safe message for err. Raw detail of untagged
// errors stays in the logs.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "internal server error"
}
