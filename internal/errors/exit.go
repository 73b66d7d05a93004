package errors

import "errors"

// Exit codes surfaced by the filer CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates template or config validation failed.
	ExitValidationError = 2

	// ExitNoMatchingRule indicates no file rule selector applied.
	ExitNoMatchingRule = 3

	// ExitRequiredField indicates a required field matched nothing.
	ExitRequiredField = 4

	// ExitMissingLayoutField indicates the layout needed an absent field.
	ExitMissingLayoutField = 5

	// ExitInvalidPattern indicates a component pattern failed to compile.
	ExitInvalidPattern = 6

	// ExitNotFound indicates a template, project, or file was not found.
	ExitNotFound = 7
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed marks that the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrNoMatchingRule):
		return ExitNoMatchingRule
	case errors.Is(err, ErrRequiredField):
		return ExitRequiredField
	case errors.Is(err, ErrMissingLayoutField):
		return ExitMissingLayoutField
	case errors.Is(err, ErrInvalidPattern):
		return ExitInvalidPattern
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitNoMatchingRule:
		return "No Matching Rule"
	case ExitRequiredField:
		return "Required Field Missing"
	case ExitMissingLayoutField:
		return "Missing Layout Field"
	case ExitInvalidPattern:
		return "Invalid Pattern"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}
