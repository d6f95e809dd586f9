package output

import "strings"

// OutputFormat specifies the output format of listing commands.
type OutputFormat string

const (
	// FormatTable outputs a styled table.
	FormatTable OutputFormat = "table"

	// FormatYAML outputs YAML.
	FormatYAML OutputFormat = "yaml"

	// FormatJSON outputs JSON.
	FormatJSON OutputFormat = "json"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// Valid checks if the output format is valid.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatTable, FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a string into an OutputFormat.
// The second return value reports whether the format is valid.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch strings.ToLower(s) {
	case "table":
		return FormatTable, true
	case "yaml", "yml":
		return FormatYAML, true
	case "json":
		return FormatJSON, true
	default:
		return OutputFormat(s), false
	}
}

// ValidFormats returns the valid output format strings.
func ValidFormats() []string {
	return []string{"table", "yaml", "json"}
}
