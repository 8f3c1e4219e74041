package drills

import "errors"

// ErrInvalidInput is returned when input validation fails
var ErrInvalidInput = errors.New("invalid input")

// ValidationError reports a query parameter that is missing or malformed.
// Message is safe to show to the client as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap lets errors.Is(err, ErrInvalidInput) match validation failures.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func errRequired(field string) error {
	return &ValidationError{Field: field, Message: field + " is required"}
}

func errNotNumber(field string) error {
	return &ValidationError{Field: field, Message: field + " must be a number"}
}
