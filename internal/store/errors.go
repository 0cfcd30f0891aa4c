package store

import (
	"errors"
	"fmt"

	"library-services/internal/validation"
)

var (
	// ErrNotFound covers missing records and malformed identifiers alike.
	ErrNotFound = errors.New("record not found")

	// ErrUsernameTaken is returned when registering a duplicate username.
	ErrUsernameTaken = errors.New("username already taken")
)

// ValidationError carries the field constraint violations that blocked a
// write. It maps to a 400 response with the violations verbatim.
type ValidationError struct {
	Fields []validation.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Fields[0].Field, e.Fields[0].Message)
}
