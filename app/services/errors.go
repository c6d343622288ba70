package services

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed or out-of-range input (inverted
// time window, end date before start date, unparsable dates).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// PolicyError reports a business-rule refusal: the input was well
// formed, the rules just say no (holiday, outside the window, already
// marked, double reset). These surface to the user as messages, never
// as server errors.
type PolicyError struct {
	Message string
}

func (e *PolicyError) Error() string {
	return e.Message
}

func NewPolicyError(format string, args ...interface{}) *PolicyError {
	return &PolicyError{Message: fmt.Sprintf(format, args...)}
}

var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
)

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsPolicy(err error) bool {
	var p *PolicyError
	return errors.As(err, &p)
}
