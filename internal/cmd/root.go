// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	cmdconfig "github.com/alphasquad/create-storefront/internal/cmd/config"
	"github.com/alphasquad/create-storefront/internal/cmdtypes"
	"github.com/alphasquad/create-storefront/internal/cmdutil"
	"github.com/alphasquad/create-storefront/internal/config"
	oerrors "github.com/alphasquad/create-storefront/internal/errors"
	"github.com/alphasquad/create-storefront/internal/output"
	"github.com/alphasquad/create-storefront/internal/version"
)

var (
	// Global flags
	settingsFlag   string
	verboseFlag    bool
	timestampsFlag bool
)

// NewRootCmd creates the root command. Run with a tenant directory it
// scaffolds a new storefront tenant.
func NewRootCmd() *cobra.Command {
	var cfg cmdtypes.GlobalConfig
	var createFlags cmdutil.CreateFlags

	rootCmd := &cobra.Command{
		Use:   "create-storefront <tenant-directory>",
		Short: "Scaffold a Saleor storefront tenant",
		Long: `Scaffold a storefront tenant project that wraps a published Saleor
storefront template.

The configurable surface of the template is read from its repository
(template/config.schema.json, then .env.example) with a bundled fallback,
values are resolved from --config, defaults and prompts, and the tenant
files are written to an empty target directory.`,
		Example: `  # Interactive
  create-storefront my-shop

  # Non-interactive with a config file
  create-storefront my-shop --yes --config storefront.json

  # Pick a template and skip installation
  create-storefront my-shop -t standard --package-manager pnpm --no-install`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, &cfg, createFlags.PackageManager)
		},
		RunE: func(c *cobra.Command, args []string) error {
			return runCreate(c, args, &createFlags, &cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&settingsFlag, "settings", "",
		"Path to settings file (env: STOREFRONT_SETTINGS)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	createFlags.AddTo(rootCmd)

	rootCmd.AddCommand(NewTemplatesCmd(&cfg))
	rootCmd.AddCommand(NewInspectCmd(&cfg))
	rootCmd.AddCommand(cmdconfig.NewConfigCmd(&cfg))
	rootCmd.AddCommand(NewVersionCmd(&cfg))

	return rootCmd
}

// initializeGlobals loads settings, resolves them and sets up logging.
func initializeGlobals(cmd *cobra.Command, cfg *cmdtypes.GlobalConfig, packageManagerFlag string) error {
	settingsPath := settingsFlag
	if settingsPath == "" {
		var err error
		settingsPath, err = config.GetSettingsFile()
		if err != nil {
			return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
		}
	}
	expanded, err := config.ExpandPath(settingsPath)
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}

	loader := config.NewLoader()
	settings, err := loader.Load(expanded)
	if err != nil {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err: &oerrors.DetailError{
				Type:     "invalid settings",
				Message:  err.Error(),
				Location: expanded,
				Hint:     "Run 'create-storefront config vet' to check the settings file.",
				Cause:    oerrors.ErrValidation,
			},
		}
	}

	resolved, err := config.ResolveSettings(config.ResolveSettingsOptions{
		PackageManagerFlag: packageManagerFlag,
		Settings:           settings,
		Env:                loader.Env,
	})
	if err != nil {
		return cmdtypes.NewExitError(err)
	}

	// Timestamps: flag (if explicitly set) > settings > default (nil = true)
	logCfg := output.LogConfig{Verbose: verboseFlag}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if settings.Log.Timestamps != nil {
		logCfg.Timestamps = settings.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	output.Debug("initializing CLI",
		"version", version.Version,
		"settings", expanded,
	)
	config.LogResolvedValues(resolved.Values)

	cfg.Settings = settings
	cfg.Resolved = resolved
	cfg.SettingsPath = expanded
	cfg.Verbose = verboseFlag

	return nil
}
