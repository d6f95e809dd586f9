package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alphasquad/create-storefront/internal/cmdtypes"
	"github.com/alphasquad/create-storefront/internal/cmdutil"
	"github.com/alphasquad/create-storefront/internal/output"
	"github.com/alphasquad/create-storefront/internal/templates"
)

// templateInfo is the machine-readable form of a registry entry.
type templateInfo struct {
	ID         string `json:"id" yaml:"id"`
	Label      string `json:"label" yaml:"label"`
	Package    string `json:"package" yaml:"package"`
	Repository string `json:"repository" yaml:"repository"`
	Default    bool   `json:"default" yaml:"default"`
}

// NewTemplatesCmd creates the templates command.
func NewTemplatesCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var outputFlags cmdutil.OutputFlags

	c := &cobra.Command{
		Use:   "templates",
		Short: "List available storefront templates",
		Long: `List the storefront templates a tenant can be scaffolded from.

Any of the ID, PACKAGE or REPOSITORY columns can be passed to --template.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			format, err := outputFlags.Parse()
			if err != nil {
				return err
			}
			return writeTemplates(c.OutOrStdout(), format)
		},
	}

	outputFlags.AddTo(c, output.FormatTable)

	return c
}

func writeTemplates(w io.Writer, format output.OutputFormat) error {
	def := templates.Default()

	infos := make([]templateInfo, 0, len(templates.List()))
	for _, d := range templates.List() {
		infos = append(infos, templateInfo{
			ID:         d.ID.String(),
			Label:      d.Label,
			Package:    d.PackageName,
			Repository: d.Repository,
			Default:    d.ID == def.ID,
		})
	}

	switch format {
	case output.FormatJSON:
		return writeJSON(w, infos)
	case output.FormatYAML:
		return writeYAML(w, infos)
	}

	tbl := output.NewTable("ID", "LABEL", "PACKAGE", "REPOSITORY")
	for _, info := range infos {
		id := info.ID
		if info.Default {
			id += " " + output.StyleDim.Render("(default)")
		}
		tbl.Row(id, info.Label, info.Package, info.Repository)
	}
	_, err := fmt.Fprintln(w, tbl.String())
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
