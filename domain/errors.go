package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound signals a missing record.
var ErrNotFound = errors.New("not found")

// ErrDuplicateAddress signals a property creation targeting an address
// that already has a record.
var ErrDuplicateAddress = errors.New("property with this address already exists")

// FieldError is a single violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated field, not just the first.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation errors: " + strings.Join(parts, "; ")
}

// Add appends a violation for the given field.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any violation was recorded.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}
