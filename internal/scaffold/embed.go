package scaffold

import "embed"

// templateFS holds the fixed-content scaffold files.
//
//go:embed templates/*.tmpl
var templateFS embed.FS
