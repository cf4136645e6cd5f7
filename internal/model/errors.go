package model

import "errors"

// ErrNotFound is returned when a trip addressed by id does not exist in the
// repository. Engine operations addressing missing activities, expenses, or
// packing items are silent no-ops instead; only trips surface this error.
var ErrNotFound = errors.New("not found")

// ValidationError reports bad user input: an empty title, a non-positive
// amount, an inverted date range. The operation that returns it has made no
// state change and nothing has been persisted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError from a message.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
