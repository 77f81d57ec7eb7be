package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCredentials is returned for any failed login, whether the
// username is unknown or the password mismatches. Callers must not
// distinguish the two cases to the user.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUnauthenticated is returned when no valid session backs a request.
var ErrUnauthenticated = errors.New("unauthenticated")

// ValidationError carries the names of form fields that failed validation so
// the form can be re-rendered with the offending fields marked.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}
