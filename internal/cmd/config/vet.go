package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alphasquad/create-storefront/internal/cmdtypes"
	"github.com/alphasquad/create-storefront/internal/config"
	oerrors "github.com/alphasquad/create-storefront/internal/errors"
	"github.com/alphasquad/create-storefront/internal/output"
	"github.com/alphasquad/create-storefront/internal/scaffold"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the settings file",
		Long: `Validate the settings file and show the effective settings.

The settings file at ~/.storefront/config.yaml is checked by default.
Use --settings or STOREFRONT_SETTINGS to choose a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, cfg)
		},
	}
}

func runVet(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	path := cfg.SettingsPath

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return &oerrors.ExitError{
				Code: oerrors.ExitNotFound,
				Err: &oerrors.DetailError{
					Type:     "settings file not found",
					Message:  fmt.Sprintf("settings file not found: %s", path),
					Location: path,
					Hint:     "Run 'create-storefront config init' to create one.",
					Cause:    oerrors.ErrNotFound,
				},
			}
		}
		return cmdtypes.NewExitError(fmt.Errorf("checking settings file: %w", err))
	}

	errs := vetSettings(cfg.Settings)
	if len(errs) > 0 {
		w := c.ErrOrStderr()
		fmt.Fprintln(w, "Error: settings validation failed")
		fmt.Fprintf(w, "  File: %s\n\n", path)
		for _, e := range errs {
			fmt.Fprintf(w, "  %s: %s\n", e.Field, e.Message)
		}
		return &oerrors.ExitError{
			Code:    oerrors.ExitValidationError,
			Err:     oerrors.Wrap(oerrors.ErrValidation, errs.Error()),
			Printed: true,
		}
	}

	w := c.OutOrStdout()
	fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("Settings file is valid: %s", path)))

	tbl := output.NewTable("KEY", "VALUE", "SOURCE")
	for _, v := range cfg.Resolved.Values {
		tbl.Row(v.Key, v.Value, string(v.Source))
	}
	fmt.Fprintln(w, tbl.String())

	return nil
}

// vetSettings runs the settings validator and checks the package manager name.
func vetSettings(s *config.Settings) config.ValidationErrors {
	var errs config.ValidationErrors

	if err := config.Validate(s); err != nil {
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			errs = append(errs, verrs...)
		}
	}

	if strings.TrimSpace(s.PackageManager) != "" {
		if _, err := scaffold.ParsePackageManager(s.PackageManager); err != nil {
			errs = append(errs, config.ValidationError{
				Field:   "packageManager",
				Message: fmt.Sprintf("unsupported package manager %q", s.PackageManager),
			})
		}
	}

	return errs
}
