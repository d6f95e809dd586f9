package scaffold

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/alphasquad/create-storefront/internal/templates"
)

// Template delimiters. GitHub Actions expressions use ${{ }}.
const (
	leftDelim  = "[["
	rightDelim = "]]"
)

// templateData is the data passed to every scaffold template.
type templateData struct {
	TenantSlug  string
	TemplateID  string
	PackageName string
	Repository  string

	Cache          string
	PnpmSetup      bool
	InstallCommand string
	UpdateCommand  string
	LintCommand    string
	TestCommand    string
	BuildCommand   string
}

func newTemplateData(d templates.Descriptor, tenantSlug string, pm PackageManager) templateData {
	return templateData{
		TenantSlug:     tenantSlug,
		TemplateID:     d.ID.String(),
		PackageName:    d.PackageName,
		Repository:     d.Repository,
		Cache:          pm.String(),
		PnpmSetup:      pm == PNPM,
		InstallCommand: pm.InstallCommand(),
		UpdateCommand:  pm.UpdateCommand(),
		LintCommand:    pm.RunCommand("lint"),
		TestCommand:    pm.RunCommand("test"),
		BuildCommand:   pm.RunCommand("build"),
	}
}

// renderTemplate renders an embedded template by file name.
func renderTemplate(name string, data templateData) (string, error) {
	content, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Delims(leftDelim, rightDelim).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.String(), nil
}
