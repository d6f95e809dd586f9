package templates

import (
	"fmt"
	"strings"
)

// DefaultID is the template used in non-interactive mode when none is selected.
const DefaultID = Basic

// registry lists every template in menu order.
var registry = []Descriptor{
	{
		ID:          Basic,
		Label:       "Basic",
		PackageName: "@alphasquad/saleor-template-basic",
		Repository:  "AlphaSquadTech/saleor-template-basic",
		fallback:    "fallback/basic.env.example",
	},
	{
		ID:          Standard,
		Label:       "Standard",
		PackageName: "@alphasquad/saleor-template-standard",
		Repository:  "AlphaSquadTech/saleor-template-standard",
		fallback:    "fallback/standard.env.example",
	},
	{
		ID:          Advance,
		Label:       "Advance",
		PackageName: "@alphasquad/saleor-template-advance",
		Repository:  "AlphaSquadTech/saleor-template-advance",
		fallback:    "fallback/advance.env.example",
	},
}

// List returns all templates in menu order.
func List() []Descriptor {
	out := make([]Descriptor, len(registry))
	copy(out, registry)
	return out
}

// Names returns all template identifiers in menu order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, d := range registry {
		names = append(names, d.ID.String())
	}
	return names
}

// Get returns the descriptor for an exact identifier.
func Get(id ID) (Descriptor, error) {
	for _, d := range registry {
		if d.ID == id {
			return d, nil
		}
	}
	return Descriptor{}, fmt.Errorf("unknown template %q; valid templates: %s", id, strings.Join(Names(), ", "))
}

// Default returns the descriptor used when no template was chosen.
func Default() Descriptor {
	d, _ := Get(DefaultID)
	return d
}

// Lookup resolves a user-supplied selector to a template.
//
// The selector is trimmed and lower-cased, then matched against, in order:
// the template identifier, the npm package name, the repository, and finally
// a suffix of the repository (so "saleor-template-advance" selects Advance).
func Lookup(selector string) (Descriptor, bool) {
	normalized := strings.ToLower(strings.TrimSpace(selector))
	if normalized == "" {
		return Descriptor{}, false
	}

	for _, d := range registry {
		if string(d.ID) == normalized {
			return d, true
		}
	}

	for _, d := range registry {
		if strings.ToLower(d.PackageName) == normalized {
			return d, true
		}
		repo := strings.ToLower(d.Repository)
		if repo == normalized || strings.HasSuffix(repo, normalized) {
			return d, true
		}
	}

	return Descriptor{}, false
}
