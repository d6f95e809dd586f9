// Package cmdutil provides shared command utilities: flag groups and the
// user-facing output of the create command.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/alphasquad/create-storefront/internal/errors"
	"github.com/alphasquad/create-storefront/internal/output"
	"github.com/alphasquad/create-storefront/internal/scaffold"
	"github.com/alphasquad/create-storefront/internal/templates"
)

// CreateFlags holds the flags of the scaffold command.
type CreateFlags struct {
	Template       string
	Config         string
	Yes            bool
	PackageManager string
	NoInstall      bool
	CI             bool
	NoCI           bool
}

// AddTo registers the scaffold flags on the given cobra command.
func (f *CreateFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Template, "template", "t", "",
		fmt.Sprintf("Template to use (%s), its npm package or repository", strings.Join(templates.Names(), ", ")))
	cmd.Flags().StringVarP(&f.Config, "config", "c", "",
		"JSON or YAML file with template, env values and ci")
	cmd.Flags().BoolVarP(&f.Yes, "yes", "y", false,
		"Use defaults for all prompts")
	cmd.Flags().StringVar(&f.PackageManager, "package-manager", "",
		fmt.Sprintf("Package manager for local install (%s) (env: STOREFRONT_PACKAGE_MANAGER)", packageManagerNames()))
	cmd.Flags().BoolVar(&f.NoInstall, "no-install", false,
		"Skip dependency installation")
	cmd.Flags().BoolVar(&f.CI, "ci", false,
		"Generate GitHub workflows")
	cmd.Flags().BoolVar(&f.NoCI, "no-ci", false,
		"Do not generate GitHub workflows")
	cmd.MarkFlagsMutuallyExclusive("ci", "no-ci")
}

// CIOverride returns the CI choice forced by --ci or --no-ci, or nil when
// neither was given.
func (f *CreateFlags) CIOverride(cmd *cobra.Command) *bool {
	switch {
	case cmd.Flags().Changed("ci"):
		return output.BoolPtr(f.CI)
	case cmd.Flags().Changed("no-ci"):
		return output.BoolPtr(!f.NoCI)
	default:
		return nil
	}
}

func packageManagerNames() string {
	names := make([]string, 0, len(scaffold.PackageManagers()))
	for _, pm := range scaffold.PackageManagers() {
		names = append(names, pm.String())
	}
	return strings.Join(names, ", ")
}

// OutputFlags holds the output format flag of read-only commands.
type OutputFlags struct {
	Format string
}

// AddTo registers the output flag on the given cobra command.
func (f *OutputFlags) AddTo(cmd *cobra.Command, def output.OutputFormat) {
	cmd.Flags().StringVarP(&f.Format, "output", "o", def.String(),
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))
}

// Parse validates the output flag.
func (f *OutputFlags) Parse() (output.OutputFormat, error) {
	format, ok := output.ParseOutputFormat(f.Format)
	if !ok {
		return "", &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err: oerrors.NewValidationError(
				fmt.Sprintf("unsupported output format: %s", f.Format),
				"", "--output",
				fmt.Sprintf("Valid formats: %s", strings.Join(output.ValidFormats(), ", ")),
			),
		}
	}
	return format, nil
}

// ResolveTargetDir returns the tenant directory argument, or a validation
// error when it is missing.
func ResolveTargetDir(args []string) (string, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return "", &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err: oerrors.NewValidationError(
				"Missing tenant directory name.", "", "",
				"Usage: create-storefront <tenant-directory> [flags]",
			),
		}
	}
	return args[0], nil
}
