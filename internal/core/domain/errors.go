package domain

import (
	"errors"
	"strings"
)

var ErrUserExists = errors.New("email or username already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrForbidden = errors.New("access forbidden")
var ErrUnauthenticated = errors.New("not authenticated")
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError carries every violation found in an input, not just the
// first, so batch contexts can report all problems at once.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

// NewValidationError builds a ValidationError from one or more violations.
func NewValidationError(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
