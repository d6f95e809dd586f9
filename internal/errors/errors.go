// Package errors provides sentinel errors, structured error details and exit
// codes for the create-storefront CLI.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Exit codes returned by the CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid input or configuration.
	ExitValidationError = 2

	// ExitPermissionDenied indicates insufficient filesystem permissions.
	ExitPermissionDenied = 4

	// ExitNotFound indicates a template or its configurable surface was not found.
	ExitNotFound = 5
)

// DetailError captures structured error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory involved (optional).
	Location string

	// Field is the configuration key involved (optional).
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

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
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

// ExitError wraps an error with an exit code.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the wrapped error.
	Err error

	// Printed reports whether the command layer already printed the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
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

// NewMissingValueError reports a required entry that resolved to an empty value.
func NewMissingValueError(key string) error {
	return &DetailError{
		Type:    "missing required value",
		Message: fmt.Sprintf("Missing required value for %s.", key),
		Field:   key,
		Hint:    "Provide it via --config.",
		Cause:   ErrMissingRequiredValue,
	}
}

// NewTargetNotEmptyError reports a scaffold target that already holds files.
func NewTargetNotEmptyError(dir string) error {
	return &DetailError{
		Type:     "target not empty",
		Message:  fmt.Sprintf("Target directory exists and is not empty: %s", dir),
		Location: dir,
		Hint:     "Choose a different directory or remove the existing one.",
		Cause:    ErrTargetNotEmpty,
	}
}

// NewMalformedConfigError reports an external configuration file that could not be parsed.
func NewMalformedConfigError(path string, cause error) error {
	return &DetailError{
		Type:     "failed to load config",
		Message:  cause.Error(),
		Location: path,
		Hint:     "The config file must be a JSON or YAML object.",
		Cause:    fmt.Errorf("%w: %w", ErrMalformedConfig, cause),
	}
}

// NewSourceUnavailableError reports a template without any configurable surface.
func NewSourceUnavailableError(template string) error {
	return &DetailError{
		Type:    "source unavailable",
		Message: "No configurable values found for selected template.",
		Context: map[string]string{"Template": template},
		Cause:   ErrSourceUnavailable,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// ExitCodeFromError determines the exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrMissingRequiredValue),
		errors.Is(err, ErrTargetNotEmpty),
		errors.Is(err, ErrMalformedConfig):
		return ExitValidationError
	case errors.Is(err, ErrPermission):
		return ExitPermissionDenied
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrSourceUnavailable):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}
