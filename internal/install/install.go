package install

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	oerrors "github.com/alphasquad/create-storefront/internal/errors"
	"github.com/alphasquad/create-storefront/internal/output"
	"github.com/alphasquad/create-storefront/internal/scaffold"
)

// Installer installs dependencies with a package manager.
type Installer struct {
	runner CommandRunner
	stdout io.Writer
	stderr io.Writer
}

// Options configures an Installer.
type Options struct {
	// Runner defaults to an ExecRunner.
	Runner CommandRunner

	// Stdout and Stderr receive the package manager output.
	Stdout io.Writer
	Stderr io.Writer
}

// New creates an Installer.
func New(opts Options) *Installer {
	if opts.Runner == nil {
		opts.Runner = NewExecRunner()
	}
	return &Installer{runner: opts.Runner, stdout: opts.Stdout, stderr: opts.Stderr}
}

// Args returns the install invocation for a package manager.
func Args(pm scaffold.PackageManager) (string, []string) {
	return pm.String(), []string{"install"}
}

// Install runs "<pm> install" in dir.
func (i *Installer) Install(ctx context.Context, pm scaffold.PackageManager, dir string) error {
	name, args := Args(pm)
	command := name + " " + strings.Join(args, " ")

	output.Debug("running package manager", "command", command, "dir", dir)

	code, err := i.runner.Run(ctx, name, args, RunOpts{Dir: dir, Stdout: i.stdout, Stderr: i.stderr})
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return &oerrors.DetailError{
				Type:     "package manager not found",
				Message:  fmt.Sprintf("%s is not installed or not on PATH", name),
				Location: dir,
				Hint:     fmt.Sprintf("Install %s or re-run with --no-install.", name),
				Cause:    oerrors.ErrNotFound,
			}
		}
		return fmt.Errorf("running %s: %w", command, err)
	}
	if code != 0 {
		return fmt.Errorf("%s exited with code %d", command, code)
	}

	return nil
}
