// Package prompt implements the line-oriented interactive input used when the
// CLI is not running with --yes.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alphasquad/create-storefront/internal/templates"
)

// LinePrompter writes a prompt and reads one line of input.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a prompter reading from in and writing prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Ask shows prompt and returns the next line without its line terminator.
// A final line without a newline is returned as is; io.EOF is returned only
// when no input remains.
func (p *LinePrompter) Ask(prompt string) (string, error) {
	if _, err := io.WriteString(p.out, prompt); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Asker is the input capability used by the menu helpers.
type Asker interface {
	Ask(prompt string) (string, error)
}

// SelectTemplate shows the numbered template menu and loops until a valid
// choice is made. An empty answer picks the first template; an answer may be
// a menu number or anything templates.Lookup accepts.
func SelectTemplate(asker Asker, out io.Writer) (templates.Descriptor, error) {
	list := templates.List()

	fmt.Fprintln(out, "Select a Saleor core template:")
	for i, d := range list {
		fmt.Fprintf(out, "  %d. %s (%s)\n", i+1, d.Label, d.ID)
	}

	for {
		answer, err := asker.Ask("Template number [1]: ")
		if err != nil {
			return templates.Descriptor{}, fmt.Errorf("reading template selection: %w", err)
		}

		answer = strings.TrimSpace(answer)
		if answer == "" {
			return list[0], nil
		}

		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(list) {
			return list[n-1], nil
		}

		if d, ok := templates.Lookup(answer); ok {
			return d, nil
		}

		fmt.Fprintln(out, "Invalid template selection. Try again.")
	}
}

// ConfirmCI asks whether CI workflows should be generated. Empty means yes.
func ConfirmCI(asker Asker) (bool, error) {
	answer, err := asker.Ask("Generate GitHub Actions for automatic template sync? [Y/n]: ")
	if err != nil {
		return false, fmt.Errorf("reading CI confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
