package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Use these instead of inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: template ids, packages, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorYellow marks required entries.
	ColorYellow = lipgloss.Color("220")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// ColorHeader is used for table headers.
	ColorHeader = lipgloss.Color("12")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (template ids, package names, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleRequired styles the required marker of an entry.
	StyleRequired = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleDim styles structural chrome and descriptions.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Styles groups the styles used by the tree renderer.
type Styles struct {
	Bold  lipgloss.Style
	Muted lipgloss.Style
}

// GetStyles returns the tree styles.
func GetStyles() Styles {
	return Styles{
		Bold:  StyleSummary,
		Muted: StyleDim,
	}
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatRequired renders the "required" marker, or nothing.
func FormatRequired(required bool) string {
	if !required {
		return ""
	}
	return StyleRequired.Render("required")
}
