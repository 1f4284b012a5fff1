package services

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by all services. Handlers map each kind to an HTTP
// status with errors.Is; the message carried by Error is client-safe, while
// driver and upstream detail stays in logs.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	// ErrCompanyNotFound means the acting user has not completed company
	// onboarding; seller operations cannot be scoped without a company.
	ErrCompanyNotFound = errors.New("company not found")
	// ErrNotFound covers both "does not exist" and "exists but belongs to
	// another tenant"; the two are deliberately indistinguishable.
	ErrNotFound      = errors.New("not found")
	ErrDuplicate     = errors.New("duplicate")
	ErrInvalidStatus = errors.New("invalid status")
)

// Error pairs a taxonomy kind with a message safe to return to clients.
type Error struct {
	kind error
	msg  string
}

// Errorf builds a client-facing error of the given kind.
func Errorf(kind error, format string, args ...interface{}) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }
