package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input (flags, template names, tenant names).
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a template or file was not found.
	ErrNotFound = errors.New("not found")

	// ErrSourceUnavailable indicates that no remote or bundled document produced
	// any configuration entries.
	ErrSourceUnavailable = errors.New("no configurable values found")

	// ErrMissingRequiredValue indicates a required entry resolved to an empty value
	// in non-interactive mode.
	ErrMissingRequiredValue = errors.New("missing required value")

	// ErrTargetNotEmpty indicates the scaffold target exists and is not an empty directory.
	ErrTargetNotEmpty = errors.New("target directory is not empty")

	// ErrMalformedConfig indicates the external configuration source could not be parsed.
	ErrMalformedConfig = errors.New("malformed configuration")
)
