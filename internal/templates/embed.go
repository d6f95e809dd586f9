package templates

import "embed"

// fallbackFS holds the bundled .env.example documents, one per template.
//
//go:embed fallback/*.env.example
var fallbackFS embed.FS
