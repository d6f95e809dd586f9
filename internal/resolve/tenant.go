// Package resolve derives the tenant context, computes effective defaults
// and resolves the final value of every configuration entry.
package resolve

import (
	"path/filepath"
	"regexp"
	"strings"

	oerrors "github.com/alphasquad/create-storefront/internal/errors"
)

// DefaultDisplayName is used when the slug yields no words.
const DefaultDisplayName = "Saleor Storefront"

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Tenant identifies the storefront tenant being scaffolded.
type Tenant struct {
	// Slug is the lowercase, dash-separated tenant identifier.
	Slug string

	// DisplayName is the title-cased slug.
	DisplayName string
}

// NewTenant derives the tenant from the base name of the target directory.
func NewTenant(targetDir string) (Tenant, error) {
	base := filepath.Base(filepath.Clean(targetDir))
	slug := Slugify(base)
	if slug == "" {
		return Tenant{}, oerrors.NewValidationError(
			"Could not derive tenant slug from target directory.",
			targetDir, "",
			"Use a directory name containing letters or digits.")
	}

	return Tenant{Slug: slug, DisplayName: DisplayName(slug)}, nil
}

// Slugify lowercases s and collapses every run of characters outside
// [a-z0-9] into a single dash, trimming leading and trailing dashes.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonSlugRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// DisplayName title-cases each dash-separated chunk of slug.
func DisplayName(slug string) string {
	chunks := strings.Split(slug, "-")
	words := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		if chunk == "" {
			continue
		}
		words = append(words, strings.ToUpper(chunk[:1])+chunk[1:])
	}
	if len(words) == 0 {
		return DefaultDisplayName
	}
	return strings.Join(words, " ")
}
