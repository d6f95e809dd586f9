// Package scaffold assembles and writes the files of a storefront tenant
// wrapper project.
package scaffold

import (
	"fmt"
	"time"

	"github.com/alphasquad/create-storefront/internal/resolve"
	"github.com/alphasquad/create-storefront/internal/schema"
	"github.com/alphasquad/create-storefront/internal/templates"
)

// Generated file paths, relative to the tenant directory.
const (
	PathManifest         = "package.json"
	PathGitignore        = ".gitignore"
	PathEnvExample       = ".env.example"
	PathEnvLocal         = ".env.local"
	PathReadme           = "README.md"
	PathRecord           = "storefront.config.json"
	PathHomePageOverride = "src/overrides/HomePage.tsx"
	PathOverrideRegistry = "src/overrides/index.ts"
	PathTemplateRunner   = "scripts/template-runner.mjs"
	PathUpdateScript     = "scripts/update-template.mjs"
	PathCheckScript      = "scripts/check-template-update.mjs"
	PathCIWorkflow       = ".github/workflows/ci.yml"
	PathSyncWorkflow     = ".github/workflows/template-sync.yml"
)

// File is one generated file.
type File struct {
	// Path is relative to the tenant directory, slash-separated.
	Path string

	// Content is the full file content.
	Content string

	// Description is shown next to the file in the created tree.
	Description string
}

// Plan is the ordered set of files for one tenant.
type Plan struct {
	Files []File
}

// Paths returns the file paths in write order.
func (p *Plan) Paths() []string {
	paths := make([]string, len(p.Files))
	for i, f := range p.Files {
		paths[i] = f.Path
	}
	return paths
}

// File returns the file with the given path.
func (p *Plan) File(path string) (File, bool) {
	for _, f := range p.Files {
		if f.Path == path {
			return f, true
		}
	}
	return File{}, false
}

// Tree maps every path to its description, for output.RenderFileTree.
func (p *Plan) Tree() map[string]string {
	tree := make(map[string]string, len(p.Files))
	for _, f := range p.Files {
		tree[f.Path] = f.Description
	}
	return tree
}

// Options are the run-level assembly options.
type Options struct {
	// TenantSlug names the generated package.
	TenantSlug string

	// PackageManager parameterizes scripts and workflows. Defaults to npm.
	PackageManager PackageManager

	// CI adds the GitHub Actions workflows.
	CI bool

	// Now supplies the generation timestamp. Defaults to time.Now.
	Now func() time.Time
}

// fileSpec describes one generated file. Exactly one of template or
// content is set.
type fileSpec struct {
	path        string
	description string
	template    string
	content     string
	ci          bool
}

// Assemble renders the plan. Output depends only on its inputs apart from
// the generatedAt timestamp of the configuration record.
func Assemble(d templates.Descriptor, values *resolve.Values, entries []schema.Entry, opts Options) (*Plan, error) {
	if opts.PackageManager == "" {
		opts.PackageManager = NPM
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	manifest, err := marshalDocument(NewManifest(d, opts.TenantSlug, opts.PackageManager))
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", PathManifest, err)
	}
	record, err := marshalDocument(NewRecord(d, opts.TenantSlug, values, opts.Now()))
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", PathRecord, err)
	}
	envFile := FormatEnvFile(entries, values)

	specs := []fileSpec{
		{path: PathManifest, description: "Tenant package manifest", content: manifest},
		{path: PathGitignore, template: "gitignore.tmpl"},
		{path: PathEnvExample, description: "Environment template", content: envFile},
		{path: PathEnvLocal, description: "Local environment values", content: envFile},
		{path: PathReadme, template: "README.md.tmpl"},
		{path: PathRecord, description: "Generated answers", content: record},
		{path: PathHomePageOverride, description: "Homepage override", template: "HomePage.tsx.tmpl"},
		{path: PathOverrideRegistry, description: "Override registry", template: "index.ts.tmpl"},
		{path: PathTemplateRunner, description: "Runs Next.js against the template", template: "template-runner.mjs.tmpl"},
		{path: PathUpdateScript, description: "Updates the template package", template: "update-template.mjs.tmpl"},
		{path: PathCheckScript, description: "Checks for template updates", template: "check-template-update.mjs.tmpl"},
		{path: PathCIWorkflow, description: "CI workflow", template: "ci.yml.tmpl", ci: true},
		{path: PathSyncWorkflow, description: "Template sync workflow", template: "template-sync.yml.tmpl", ci: true},
	}

	data := newTemplateData(d, opts.TenantSlug, opts.PackageManager)
	plan := &Plan{Files: make([]File, 0, len(specs))}
	for _, spec := range specs {
		if spec.ci && !opts.CI {
			continue
		}

		content := spec.content
		if spec.template != "" {
			content, err = renderTemplate(spec.template, data)
			if err != nil {
				return nil, err
			}
		}

		plan.Files = append(plan.Files, File{
			Path:        spec.path,
			Content:     content,
			Description: spec.description,
		})
	}

	return plan, nil
}
