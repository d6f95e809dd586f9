package scaffold

import (
	"strings"

	"github.com/alphasquad/create-storefront/internal/resolve"
	"github.com/alphasquad/create-storefront/internal/schema"
)

// Env file header lines.
const (
	envHeaderGenerated = "# Generated by @alphasquad/create-saleor-storefront"
	envHeaderEdit      = "# Edit values as needed for each tenant environment"
)

var envEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// FormatEnvFile renders every entry as KEY="value" in entry order, each
// preceded by its description as comment lines when present.
func FormatEnvFile(entries []schema.Entry, values *resolve.Values) string {
	lines := []string{envHeaderGenerated, envHeaderEdit, ""}

	for _, entry := range entries {
		lines = append(lines, commentLines(entry.Description)...)
		var value string
		if values != nil {
			value, _ = values.Get(entry.Key)
		}
		lines = append(lines, entry.Key+"="+QuoteEnvValue(value), "")
	}

	return strings.TrimRight(strings.Join(lines, "\n"), " \t\r\n") + "\n"
}

// commentLines renders a description as one comment per non-blank line.
func commentLines(description string) []string {
	var lines []string
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, "# "+line)
		}
	}
	return lines
}

// QuoteEnvValue wraps value in double quotes, escaping backslashes and quotes.
func QuoteEnvValue(value string) string {
	return `"` + envEscaper.Replace(value) + `"`
}
