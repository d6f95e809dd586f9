package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alphasquad/create-storefront/internal/cmdtypes"
	"github.com/alphasquad/create-storefront/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show create-storefront version information.

Displays the CLI version, commit, build date and Go version.`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

func runVersion(c *cobra.Command, _ []string) error {
	info := version.Get()
	w := c.OutOrStdout()

	fmt.Fprintf(w, "create-storefront version %s\n", info.Version)
	fmt.Fprintf(w, "  Commit:    %s\n", info.GitCommit)
	fmt.Fprintf(w, "  Built:     %s\n", info.BuildDate)
	fmt.Fprintf(w, "  Go:        %s\n", info.GoVersion)

	return nil
}
