package apperr

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrConflict indicates a uniqueness or state conflict.
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrUnauthorized indicates that the caller identity could not be resolved.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller has no standing for the operation.
var ErrForbidden = errors.New("forbidden")

// Error is a domain error with a caller-facing message, classified by one of the sentinels above.
type Error struct {
	msg   string
	class error
}

// New returns an error reading msg that matches class under errors.Is.
func New(class error, msg string) *Error {
	return &Error{msg: msg, class: class}
}

// Invalidf builds an ErrInvalid-classified error.
func Invalidf(format string, args ...any) *Error {
	return New(ErrInvalid, fmt.Sprintf(format, args...))
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.class }

// Message returns the caller-facing text of err when it is an *Error, and fallback otherwise.
func Message(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) {
		return e.msg
	}
	return fallback
}
