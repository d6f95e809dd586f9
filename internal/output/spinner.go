package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// RunWithSpinner executes an action while a spinner is shown.
// When stdout is not a terminal the action runs without a spinner.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{title: "Working..."}
	for _, opt := range opts {
		opt(cfg)
	}

	if !IsTTY() {
		return action()
	}

	var actionErr error
	err := spinner.New().
		Context(ctx).
		Title(cfg.title).
		Action(func() {
			actionErr = action()
		}).
		Run()
	if err != nil {
		return fmt.Errorf("spinner error: %w", err)
	}

	return actionErr
}
