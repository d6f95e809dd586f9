package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	oerrors "github.com/alphasquad/create-storefront/internal/errors"
	"github.com/alphasquad/create-storefront/internal/output"
	"github.com/alphasquad/create-storefront/internal/pipeline"
	"github.com/alphasquad/create-storefront/internal/scaffold"
)

// WriteSummary writes the post-scaffold summary: where the tenant was
// created, its template package and the next steps.
func WriteSummary(w io.Writer, result *pipeline.Result, pm scaffold.PackageManager, noInstall bool) {
	base := filepath.Base(result.TargetDir)

	fmt.Fprintf(w, "\nStorefront tenant scaffold created at %s\n", result.TargetDir)
	fmt.Fprintf(w, "Template package: %s\n", result.Template.PackageName)
	fmt.Fprintf(w, "\nNext steps:\n")
	fmt.Fprintf(w, "  cd %s\n", base)
	if noInstall {
		fmt.Fprintf(w, "  %s install\n", pm)
	}
	fmt.Fprintf(w, "  %s\n", pm.DevCommand())
}

// WriteTree writes the tree of generated files.
func WriteTree(w io.Writer, result *pipeline.Result) {
	tree := output.RenderFileTree(filepath.Base(result.TargetDir), result.Plan.Tree())
	if tree == "" {
		return
	}
	fmt.Fprintf(w, "\n%s\n", tree)
}

// PrintCreateError logs a failed scaffold and marks it printed so main does
// not print it again.
func PrintCreateError(err error) error {
	code := oerrors.ExitCodeFromError(err)

	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		output.Error("failed to create storefront")
		output.Details(detail.Error())
	} else {
		output.Error(fmt.Sprintf("Failed to create storefront: %s", err))
	}

	return &oerrors.ExitError{Code: code, Err: err, Printed: true}
}
