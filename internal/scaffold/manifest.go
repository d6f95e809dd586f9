package scaffold

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/alphasquad/create-storefront/internal/resolve"
	"github.com/alphasquad/create-storefront/internal/templates"
)

// ManifestVersion is the version of every generated tenant package.
const ManifestVersion = "0.1.0"

// TimestampFormat is the generatedAt layout (UTC, millisecond precision).
const TimestampFormat = "2006-01-02T15:04:05.000Z"

// Manifest is the generated package.json.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Scripts         ManifestScripts   `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// ManifestScripts are the package.json scripts in their rendered order.
type ManifestScripts struct {
	Dev            string `json:"dev"`
	Build          string `json:"build"`
	Start          string `json:"start"`
	Lint           string `json:"lint"`
	TemplateUpdate string `json:"template:update"`
	TemplateCheck  string `json:"template:check"`
}

// NewManifest builds the tenant package manifest. The template package is
// the only runtime dependency and floats on "latest".
func NewManifest(d templates.Descriptor, tenantSlug string, pm PackageManager) Manifest {
	return Manifest{
		Name:    tenantSlug,
		Version: ManifestVersion,
		Private: true,
		Scripts: ManifestScripts{
			Dev:            "node ./scripts/template-runner.mjs dev",
			Build:          "node ./scripts/template-runner.mjs build",
			Start:          "node ./scripts/template-runner.mjs start",
			Lint:           "node ./scripts/template-runner.mjs lint",
			TemplateUpdate: "node ./scripts/update-template.mjs " + pm.String(),
			TemplateCheck:  "node ./scripts/check-template-update.mjs",
		},
		Dependencies: map[string]string{
			d.PackageName: "latest",
		},
		DevDependencies: map[string]string{
			"@tailwindcss/postcss": "^4",
			"tailwindcss":          "^4",
			"typescript":           "^5",
		},
	}
}

// Record is the persisted storefront.config.json.
type Record struct {
	Template    RecordTemplate  `json:"template"`
	Tenant      RecordTenant    `json:"tenant"`
	Env         *resolve.Values `json:"env"`
	GeneratedAt string          `json:"generatedAt"`
}

// RecordTemplate identifies the selected template.
type RecordTemplate struct {
	ID          string `json:"id"`
	PackageName string `json:"packageName"`
	Repository  string `json:"repository"`
}

// RecordTenant identifies the tenant.
type RecordTenant struct {
	Slug string `json:"slug"`
}

// NewRecord builds the configuration record.
func NewRecord(d templates.Descriptor, tenantSlug string, values *resolve.Values, generatedAt time.Time) Record {
	if values == nil {
		values = resolve.NewValues()
	}
	return Record{
		Template: RecordTemplate{
			ID:          d.ID.String(),
			PackageName: d.PackageName,
			Repository:  d.RepositoryURL(),
		},
		Tenant:      RecordTenant{Slug: tenantSlug},
		Env:         values,
		GeneratedAt: generatedAt.UTC().Format(TimestampFormat),
	}
}

// marshalDocument encodes v as two-space indented JSON with a trailing newline.
func marshalDocument(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return buf.String(), nil
}
