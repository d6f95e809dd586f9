// Package pipeline runs a complete scaffold: template selection, source
// loading, value resolution, assembly, writing and dependency installation.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/alphasquad/create-storefront/internal/config"
	oerrors "github.com/alphasquad/create-storefront/internal/errors"
	"github.com/alphasquad/create-storefront/internal/output"
	"github.com/alphasquad/create-storefront/internal/prompt"
	"github.com/alphasquad/create-storefront/internal/resolve"
	"github.com/alphasquad/create-storefront/internal/scaffold"
	"github.com/alphasquad/create-storefront/internal/source"
	"github.com/alphasquad/create-storefront/internal/templates"
)

// SurfaceLoader loads the configuration surface of a template.
type SurfaceLoader interface {
	Load(ctx context.Context, d templates.Descriptor) (*source.Result, error)
}

// Installer installs dependencies in the generated tenant.
type Installer interface {
	Install(ctx context.Context, pm scaffold.PackageManager, dir string) error
}

// Options are the per-run inputs.
type Options struct {
	// TargetDir is the tenant directory as given on the command line.
	TargetDir string

	// Cwd resolves a relative TargetDir.
	Cwd string

	// Template is the --template selector (empty if not set).
	Template string

	// Payload is the external configuration. May be nil.
	Payload *config.Payload

	// NonInteractive disables every prompt.
	NonInteractive bool

	// CI is the --ci/--no-ci flag, nil when neither was given.
	CI *bool

	// PackageManager drives scripts, workflows and installation.
	PackageManager scaffold.PackageManager

	// NoInstall skips dependency installation.
	NoInstall bool
}

// Deps are the collaborators of a run.
type Deps struct {
	Loader    SurfaceLoader
	Installer Installer

	// Asker is required unless Options.NonInteractive is set.
	Asker prompt.Asker

	// Out receives user-facing progress text.
	Out io.Writer

	// Now stamps the configuration record. Defaults to time.Now.
	Now func() time.Time
}

// Result describes a completed run.
type Result struct {
	TargetDir string
	Template  templates.Descriptor
	Tenant    resolve.Tenant
	Source    *source.Result
	Values    *resolve.Values
	Plan      *scaffold.Plan
	CI        bool
	Installed bool
}

// Run executes the pipeline. The target directory is checked once, before
// anything is asked or written.
func Run(ctx context.Context, opts Options, deps Deps) (*Result, error) {
	if deps.Out == nil {
		deps.Out = io.Discard
	}
	if opts.Payload == nil {
		opts.Payload = &config.Payload{}
	}
	if opts.PackageManager == "" {
		opts.PackageManager = scaffold.NPM
	}
	if !opts.NonInteractive && deps.Asker == nil {
		return nil, fmt.Errorf("interactive mode requires an input source")
	}

	targetDir := opts.TargetDir
	if !filepath.IsAbs(targetDir) {
		targetDir = filepath.Join(opts.Cwd, targetDir)
	}
	targetDir = filepath.Clean(targetDir)

	tenant, err := resolve.NewTenant(targetDir)
	if err != nil {
		return nil, err
	}

	if err := scaffold.CheckTarget(targetDir); err != nil {
		return nil, err
	}

	descriptor, err := selectTemplate(opts, deps)
	if err != nil {
		return nil, err
	}

	ci, err := selectCI(opts, deps)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(deps.Out, "\nUsing template: %s (%s)\n", descriptor.Label, descriptor.PackageName)

	logger := output.TemplateLogger(descriptor.ID.String())
	logger.Debug("tenant", "slug", tenant.Slug, "display", tenant.DisplayName, "dir", targetDir)

	var surface *source.Result
	err = output.RunWithSpinner(ctx, func() error {
		var loadErr error
		surface, loadErr = deps.Loader.Load(ctx, descriptor)
		return loadErr
	}, output.WithTitle(fmt.Sprintf("Fetching configuration for %s...", descriptor.ID)))
	if err != nil {
		return nil, err
	}
	logger.Debug("entries loaded", "count", len(surface.Entries), "format", surface.Format, "origin", surface.Origin)

	resolver := resolve.NewResolver(resolve.Options{
		Tenant:         tenant,
		NonInteractive: opts.NonInteractive,
		Asker:          deps.Asker,
		Out:            deps.Out,
	})
	values, err := resolver.Resolve(surface.Entries, opts.Payload.Env)
	if err != nil {
		return nil, err
	}

	plan, err := scaffold.Assemble(descriptor, values, surface.Entries, scaffold.Options{
		TenantSlug:     tenant.Slug,
		PackageManager: opts.PackageManager,
		CI:             ci,
		Now:            deps.Now,
	})
	if err != nil {
		return nil, fmt.Errorf("assembling scaffold: %w", err)
	}

	if err := scaffold.Write(targetDir, plan); err != nil {
		return nil, err
	}
	logger.Debug("scaffold written", "files", len(plan.Files))

	result := &Result{
		TargetDir: targetDir,
		Template:  descriptor,
		Tenant:    tenant,
		Source:    surface,
		Values:    values,
		Plan:      plan,
		CI:        ci,
	}

	if opts.NoInstall || deps.Installer == nil {
		return result, nil
	}

	fmt.Fprintf(deps.Out, "\nInstalling dependencies with %s...\n", opts.PackageManager)
	if err := deps.Installer.Install(ctx, opts.PackageManager, targetDir); err != nil {
		return nil, err
	}
	result.Installed = true

	return result, nil
}

// selectTemplate applies flag > config > default (non-interactive) > menu.
func selectTemplate(opts Options, deps Deps) (templates.Descriptor, error) {
	candidates := []struct {
		source   string
		selector string
	}{
		{"--template", opts.Template},
		{"config", opts.Payload.Template},
	}

	for _, c := range candidates {
		if c.selector == "" {
			continue
		}
		d, ok := templates.Lookup(c.selector)
		if !ok {
			return templates.Descriptor{}, &oerrors.DetailError{
				Type:    "unknown template",
				Message: fmt.Sprintf("Invalid template selection: %s", c.selector),
				Field:   c.source,
				Hint:    "Run 'create-storefront templates' to list available templates.",
				Cause:   oerrors.ErrNotFound,
			}
		}
		output.Debug("template selected", "template", d.ID, "source", c.source)
		return d, nil
	}

	if opts.NonInteractive {
		return templates.Default(), nil
	}

	return prompt.SelectTemplate(deps.Asker, deps.Out)
}

// selectCI applies flag > config > true (non-interactive) > confirmation.
func selectCI(opts Options, deps Deps) (bool, error) {
	switch {
	case opts.CI != nil:
		return *opts.CI, nil
	case opts.Payload.CI != nil:
		return *opts.Payload.CI, nil
	case opts.NonInteractive:
		return true, nil
	default:
		return prompt.ConfirmCI(deps.Asker)
	}
}
