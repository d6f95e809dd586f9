package resolve

import (
	"fmt"
	"io"
	"strings"

	oerrors "github.com/alphasquad/create-storefront/internal/errors"
	"github.com/alphasquad/create-storefront/internal/output"
	"github.com/alphasquad/create-storefront/internal/schema"
)

// Asker reads one line of input after showing prompt.
type Asker interface {
	Ask(prompt string) (string, error)
}

// Options configures a Resolver.
type Options struct {
	// Tenant supplies the tenant-derived defaults.
	Tenant Tenant

	// NonInteractive resolves every entry without asking.
	NonInteractive bool

	// Asker is required unless NonInteractive is set.
	Asker Asker

	// Out receives entry descriptions and re-prompt notices.
	Out io.Writer
}

// Resolver produces the final value of every entry.
type Resolver struct {
	opts Options
}

// NewResolver creates a Resolver.
func NewResolver(opts Options) *Resolver {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	return &Resolver{opts: opts}
}

// Resolve resolves entries in order. A key present in external is taken
// verbatim even when its value is empty or null. Otherwise the computed
// default is used in non-interactive mode and offered as a suggestion in
// interactive mode.
func (r *Resolver) Resolve(entries []schema.Entry, external map[string]any) (*Values, error) {
	if !r.opts.NonInteractive && r.opts.Asker == nil {
		return nil, fmt.Errorf("interactive resolution requires an input source")
	}

	values := NewValues()
	for _, entry := range entries {
		if raw, ok := external[entry.Key]; ok {
			values.Set(entry.Key, schema.Stringify(raw))
			output.Debug("value from config", "key", entry.Key)
			continue
		}

		computed := ComputeDefault(entry, r.opts.Tenant)

		if r.opts.NonInteractive {
			if entry.Required && computed == "" {
				return nil, oerrors.NewMissingValueError(entry.Key)
			}
			values.Set(entry.Key, computed)
			continue
		}

		value, err := r.ask(entry, computed)
		if err != nil {
			return nil, err
		}
		values.Set(entry.Key, value)
	}

	return values, nil
}

// ask prompts until a usable value is given.
func (r *Resolver) ask(entry schema.Entry, computed string) (string, error) {
	if entry.Description != "" {
		fmt.Fprintf(r.opts.Out, "\n%s\n", entry.Description)
	}

	prompt := Prompt(entry, computed)
	for {
		answer, err := r.opts.Asker.Ask(prompt)
		if err != nil {
			return "", fmt.Errorf("reading value for %s: %w", entry.Key, err)
		}

		answer = strings.TrimSpace(answer)
		if answer != "" {
			return answer, nil
		}
		if entry.Required && computed == "" {
			fmt.Fprintf(r.opts.Out, "%s is required.\n", entry.Key)
			continue
		}
		return computed, nil
	}
}

// Prompt renders the question shown for an entry, e.g.
// "NEXT_PUBLIC_API_URL (required) [https://api]: ".
func Prompt(entry schema.Entry, computed string) string {
	var b strings.Builder
	b.WriteString(entry.Key)
	if entry.Required {
		b.WriteString(" (required)")
	}
	if computed != "" {
		b.WriteString(" [")
		b.WriteString(computed)
		b.WriteString("]")
	}
	b.WriteString(": ")
	return b.String()
}
