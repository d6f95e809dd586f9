// Package install runs the package manager in a freshly scaffolded tenant.
package install

import (
	"context"
	"errors"
	"io"
	"os/exec"
)

// RunOpts holds optional parameters for command execution.
type RunOpts struct {
	Dir    string    // working directory (optional)
	Stdout io.Writer // defaults to discard
	Stderr io.Writer // defaults to discard
}

// CommandRunner runs external commands.
type CommandRunner interface {
	// Run executes a command and returns its exit code.
	// Returns an error only when the process could not run
	// (binary not found, ctx canceled, io failure).
	Run(ctx context.Context, name string, args []string, opts RunOpts) (int, error)
}

// ExecRunner is the os/exec implementation of CommandRunner.
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command, streaming its output to opts.Stdout and opts.Stderr.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = opts.Dir
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}
