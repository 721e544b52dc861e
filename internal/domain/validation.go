package domain

import (
	"sort"
	"strings"
)

// ValidationErrors maps a request field to the messages describing why it
// was rejected. It satisfies errors.Is(err, ErrValidation).
type ValidationErrors map[string][]string

// NewValidationError returns a ValidationErrors holding a single message.
func NewValidationError(field, message string) ValidationErrors {
	v := ValidationErrors{}
	v.Add(field, message)
	return v
}

// Add appends message to the messages recorded for field.
func (v ValidationErrors) Add(field, message string) {
	v[field] = append(v[field], message)
}

// HasErrors reports whether any field has been rejected.
func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

// Err returns v as an error, or nil when there is nothing to report.
func (v ValidationErrors) Err() error {
	if !v.HasErrors() {
		return nil
	}
	return v
}

// Error renders the fields in a stable order.
func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(v[field], ", "))
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Is makes ValidationErrors match ErrValidation.
func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}
