// Package errors provides sentinel errors for the filer CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a template or config validation failure.
	ErrValidation = errors.New("validation error")

	// ErrNoMatchingRule indicates no file rule selector applies to a filename.
	ErrNoMatchingRule = errors.New("no matching rule")

	// ErrRequiredField indicates a required component failed to match and has no default.
	ErrRequiredField = errors.New("required field missing")

	// ErrMissingLayoutField indicates the layout references a field absent from the mapping.
	ErrMissingLayoutField = errors.New("missing layout field")

	// ErrInvalidPattern indicates a component pattern is not a valid regular expression.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrNotFound indicates a template, project, or file was not found.
	ErrNotFound = errors.New("not found")
)

// DetailError captures structured error information for terminal output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the offending file path (optional).
	Location string

	// Field is the field or component name for matching errors (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNoMatchingRuleError creates an error for a filename no rule selector accepts.
func NewNoMatchingRuleError(filename string) error {
	return &DetailError{
		Type:    "no matching rule",
		Message: fmt.Sprintf("no file rule selector matches %q", filename),
		Context: map[string]string{"Filename": filename},
		Hint:    `Add a matching selector to the template, or a "*" catch-all rule.`,
		Cause:   ErrNoMatchingRule,
	}
}

// NewRequiredFieldError creates an error for a required field that matched nothing.
func NewRequiredFieldError(field, filename string) error {
	return &DetailError{
		Type:    "required field missing",
		Message: fmt.Sprintf("required field %q matched no component of %q", field, filename),
		Field:   field,
		Context: map[string]string{"Filename": filename},
		Hint:    "Mark the component optional or give it a default value.",
		Cause:   ErrRequiredField,
	}
}

// NewUnconsumedGroupError creates an error for a group whose children all
// matched but left part of the group's token unconsumed.
func NewUnconsumedGroupError(group, rest, filename string) error {
	return &DetailError{
		Type:    "incomplete group match",
		Message: fmt.Sprintf("group %q left %q of its token unconsumed in %q", group, rest, filename),
		Field:   group,
		Context: map[string]string{"Filename": filename, "Unconsumed": rest},
		Hint:    "A group with its own separator must consume its token completely.",
		Cause:   ErrRequiredField,
	}
}

// NewMissingLayoutFieldError creates an error for a layout field absent from a mapping.
func NewMissingLayoutFieldError(field string) error {
	return &DetailError{
		Type:    "missing layout field",
		Message: fmt.Sprintf("layout references field %q which is absent from the field mapping", field),
		Field:   field,
		Hint:    "Layout fields must be declared as components or defaults in every file rule.",
		Cause:   ErrMissingLayoutField,
	}
}

// NewInvalidPatternError creates an error for an uncompilable component pattern.
func NewInvalidPatternError(field, pattern string, cause error) error {
	return &DetailError{
		Type:    "invalid pattern",
		Message: fmt.Sprintf("component %q has invalid pattern %q: %v", field, pattern, cause),
		Field:   field,
		Cause:   ErrInvalidPattern,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
