package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/alphasquad/create-storefront/internal/cmdtypes"
	"github.com/alphasquad/create-storefront/internal/cmdutil"
	oerrors "github.com/alphasquad/create-storefront/internal/errors"
	"github.com/alphasquad/create-storefront/internal/output"
	"github.com/alphasquad/create-storefront/internal/resolve"
	"github.com/alphasquad/create-storefront/internal/schema"
	"github.com/alphasquad/create-storefront/internal/source"
	"github.com/alphasquad/create-storefront/internal/templates"
)

// descriptionWidth wraps long descriptions in the inspect table.
const descriptionWidth = 48

// inspectEntry is an entry with the default a tenant would be offered.
type inspectEntry struct {
	schema.Entry `yaml:",inline"`

	// Computed is set only when a tenant was given.
	Computed *string `json:"computed,omitempty" yaml:"computed,omitempty"`
}

// inspectReport is the machine-readable inspect output.
type inspectReport struct {
	Template string         `json:"template" yaml:"template"`
	Format   schema.Format  `json:"format" yaml:"format"`
	Origin   string         `json:"origin" yaml:"origin"`
	Entries  []inspectEntry `json:"entries" yaml:"entries"`
}

// NewInspectCmd creates the inspect command.
func NewInspectCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var outputFlags cmdutil.OutputFlags
	var tenantFlag string

	c := &cobra.Command{
		Use:   "inspect <template>",
		Short: "Show the configurable values of a template",
		Long: `Show the configurable values of a template.

The same documents the scaffold uses are loaded: the template's
config.schema.json, then its .env.example, then the bundled fallback.
With --tenant, the default offered to that tenant is shown as well.

Examples:
  create-storefront inspect basic
  create-storefront inspect standard -o yaml --tenant my-shop`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runInspect(c, args[0], tenantFlag, &outputFlags, cfg)
		},
	}

	outputFlags.AddTo(c, output.FormatTable)
	c.Flags().StringVar(&tenantFlag, "tenant", "",
		"Tenant directory used to compute tenant-specific defaults")

	return c
}

func runInspect(c *cobra.Command, selector, tenantDir string, outputFlags *cmdutil.OutputFlags, cfg *cmdtypes.GlobalConfig) error {
	format, err := outputFlags.Parse()
	if err != nil {
		return err
	}

	d, ok := templates.Lookup(selector)
	if !ok {
		return &oerrors.ExitError{
			Code: oerrors.ExitNotFound,
			Err: &oerrors.DetailError{
				Type:    "unknown template",
				Message: fmt.Sprintf("Invalid template selection: %s", selector),
				Hint:    fmt.Sprintf("Valid templates: %s", strings.Join(templates.Names(), ", ")),
				Cause:   oerrors.ErrNotFound,
			},
		}
	}

	var tenant *resolve.Tenant
	if tenantDir != "" {
		abs, err := filepath.Abs(tenantDir)
		if err != nil {
			return cmdtypes.NewExitError(err)
		}
		t, err := resolve.NewTenant(abs)
		if err != nil {
			return cmdtypes.NewExitError(err)
		}
		tenant = &t
	}

	loader := source.NewLoader(source.LoaderOptions{
		Fetcher: source.NewHTTPFetcher(cfg.Resolved.FetchTimeout),
		BaseURL: cfg.Resolved.SourceBaseURL,
	})

	var result *source.Result
	err = output.RunWithSpinner(c.Context(), func() error {
		var loadErr error
		result, loadErr = loader.Load(c.Context(), d)
		return loadErr
	}, output.WithTitle(fmt.Sprintf("Fetching configuration for %s...", d.ID)))
	if err != nil {
		return cmdtypes.NewExitError(err)
	}

	report := newInspectReport(d, result, tenant)

	switch format {
	case output.FormatJSON:
		return writeJSON(c.OutOrStdout(), report)
	case output.FormatYAML:
		return writeYAML(c.OutOrStdout(), report)
	default:
		return writeInspectTable(c.OutOrStdout(), report, tenant != nil)
	}
}

func newInspectReport(d templates.Descriptor, result *source.Result, tenant *resolve.Tenant) inspectReport {
	report := inspectReport{
		Template: d.ID.String(),
		Format:   result.Format,
		Origin:   result.Origin,
		Entries:  make([]inspectEntry, 0, len(result.Entries)),
	}
	for _, e := range result.Entries {
		entry := inspectEntry{Entry: e}
		if tenant != nil {
			computed := resolve.ComputeDefault(e, *tenant)
			entry.Computed = &computed
		}
		report.Entries = append(report.Entries, entry)
	}
	return report
}

func writeInspectTable(w io.Writer, report inspectReport, withTenant bool) error {
	fmt.Fprintf(w, "Template: %s\n", output.StyleNoun.Render(report.Template))
	fmt.Fprintf(w, "Source:   %s (%s)\n", report.Origin, report.Format)

	headers := []string{"KEY", "REQUIRED", "DEFAULT"}
	if withTenant {
		headers = append(headers, "TENANT DEFAULT")
	}
	headers = append(headers, "DESCRIPTION")

	tbl := output.NewTable(headers...)
	for _, e := range report.Entries {
		row := []string{e.Key, output.FormatRequired(e.Required), e.Default}
		if withTenant {
			row = append(row, *e.Computed)
		}
		row = append(row, wordwrap.String(e.Description, descriptionWidth))
		tbl.Row(row...)
	}

	_, err := fmt.Fprintln(w, tbl.String())
	return err
}

