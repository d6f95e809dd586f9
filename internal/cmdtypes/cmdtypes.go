// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/config).
package cmdtypes

import (
	"github.com/alphasquad/create-storefront/internal/config"
	oerrors "github.com/alphasquad/create-storefront/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Settings is the settings file content. Never nil after initialization.
	Settings *config.Settings

	// Resolved holds the effective settings after flag > env > file > default.
	Resolved *config.Resolved

	// SettingsPath is the resolved settings file path (--settings or default).
	SettingsPath string

	Verbose bool
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess          = oerrors.ExitSuccess
	ExitGeneralError     = oerrors.ExitGeneralError
	ExitValidationError  = oerrors.ExitValidationError
	ExitPermissionDenied = oerrors.ExitPermissionDenied
	ExitNotFound         = oerrors.ExitNotFound
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError

// NewExitError wraps err with the exit code derived from its sentinel.
func NewExitError(err error) *ExitError {
	return &ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
}
