package services

import (
	"errors"
	"fmt"
)

// Failure classes the HTTP layer maps to status codes. Anything else is a
// generic persistence failure and becomes a 500.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError carries a human-readable message for a 400 response.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func NewValidationError(msg string) error {
	return &ValidationError{msg: msg}
}

func validationf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a request-validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AccountDisabledError rejects a supplier login whose account is not active.
// The message carries the account status so the supplier knows what to take
// up with support.
type AccountDisabledError struct {
	Status string
}

func (e *AccountDisabledError) Error() string {
	return fmt.Sprintf("Access denied. Your supplier account status is '%s'. Please contact support.", e.Status)
}
