package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alphasquad/create-storefront/internal/cmdtypes"
	"github.com/alphasquad/create-storefront/internal/cmdutil"
	"github.com/alphasquad/create-storefront/internal/config"
	"github.com/alphasquad/create-storefront/internal/install"
	"github.com/alphasquad/create-storefront/internal/output"
	"github.com/alphasquad/create-storefront/internal/pipeline"
	"github.com/alphasquad/create-storefront/internal/prompt"
	"github.com/alphasquad/create-storefront/internal/scaffold"
	"github.com/alphasquad/create-storefront/internal/source"
)

func runCreate(c *cobra.Command, args []string, flags *cmdutil.CreateFlags, cfg *cmdtypes.GlobalConfig) error {
	targetDir, err := cmdutil.ResolveTargetDir(args)
	if err != nil {
		return err
	}

	pm, err := scaffold.ParsePackageManager(cfg.Resolved.PackageManager)
	if err != nil {
		return cmdtypes.NewExitError(err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: fmt.Errorf("getting working directory: %w", err)}
	}

	var payload *config.Payload
	if flags.Config != "" {
		payload, err = config.LoadPayload(flags.Config, cwd)
		if err != nil {
			return cmdutil.PrintCreateError(err)
		}
		output.Debug("config loaded",
			"path", flags.Config,
			"template", payload.Template,
			"values", len(payload.Env),
		)
	}

	out := c.OutOrStdout()
	loader := source.NewLoader(source.LoaderOptions{
		Fetcher: source.NewHTTPFetcher(cfg.Resolved.FetchTimeout),
		BaseURL: cfg.Resolved.SourceBaseURL,
	})
	installer := install.New(install.Options{
		Stdout: out,
		Stderr: c.ErrOrStderr(),
	})

	result, err := pipeline.Run(c.Context(), pipeline.Options{
		TargetDir:      targetDir,
		Cwd:            cwd,
		Template:       flags.Template,
		Payload:        payload,
		NonInteractive: flags.Yes,
		CI:             flags.CIOverride(c),
		PackageManager: pm,
		NoInstall:      flags.NoInstall,
	}, pipeline.Deps{
		Loader:    loader,
		Installer: installer,
		Asker:     prompt.NewLinePrompter(c.InOrStdin(), out),
		Out:       out,
	})
	if err != nil {
		return cmdutil.PrintCreateError(err)
	}

	cmdutil.WriteTree(out, result)
	cmdutil.WriteSummary(out, result, pm, flags.NoInstall)

	return nil
}
