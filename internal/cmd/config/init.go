package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alphasquad/create-storefront/internal/cmdtypes"
	"github.com/alphasquad/create-storefront/internal/config"
	oerrors "github.com/alphasquad/create-storefront/internal/errors"
	"github.com/alphasquad/create-storefront/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a settings file with default values",
		Long: `Create a settings file with default values.

The file is created at ~/.storefront/config.yaml by default.
Use --settings or STOREFRONT_SETTINGS to choose a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, cfg, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing settings file")

	return c
}

func runInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, force bool) error {
	path := cfg.SettingsPath

	_, err := os.Stat(path)
	switch {
	case err == nil && !force:
		return &oerrors.ExitError{
			Code: oerrors.ExitGeneralError,
			Err: &oerrors.DetailError{
				Type:     "settings file exists",
				Message:  fmt.Sprintf("settings file already exists at %s", path),
				Location: path,
				Hint:     "Use --force to overwrite.",
			},
		}
	case err != nil && !os.IsNotExist(err):
		return cmdtypes.NewExitError(fmt.Errorf("checking settings file: %w", err))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return cmdtypes.NewExitError(fmt.Errorf("creating settings directory: %w", err))
	}

	data, err := config.MarshalSettings(config.DefaultSettings())
	if err != nil {
		return cmdtypes.NewExitError(fmt.Errorf("marshaling settings: %w", err))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		if os.IsPermission(err) {
			return cmdtypes.NewExitError(oerrors.Wrap(oerrors.ErrPermission, fmt.Sprintf("writing %s", path)))
		}
		return cmdtypes.NewExitError(fmt.Errorf("writing settings file: %w", err))
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(fmt.Sprintf("Settings file created: %s", path)))
	return nil
}
