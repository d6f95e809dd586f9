// Package templates provides the registry of storefront templates a tenant
// wrapper can be scaffolded from.
package templates

// ID identifies one template variant.
type ID string

const (
	// Basic is the minimal storefront with PartsLogic search.
	Basic ID = "basic"

	// Standard adds theming, tenant configuration and storefront URLs.
	Standard ID = "standard"

	// Advance adds the external configuration service and fitment features.
	Advance ID = "advance"
)

// String returns the identifier as a string.
func (id ID) String() string {
	return string(id)
}

// Descriptor is the immutable metadata for a template variant.
type Descriptor struct {
	// ID is the template identifier (basic, standard, advance).
	ID ID

	// Label is the human-readable name shown in menus.
	Label string

	// PackageName is the npm distribution package of the template.
	PackageName string

	// Repository is the GitHub "owner/name" the template is developed in.
	Repository string

	// fallback is the embedded file holding the bundled .env.example.
	fallback string
}

// RepositoryURL returns the browsable URL of the template's source repository.
func (d Descriptor) RepositoryURL() string {
	return "https://github.com/" + d.Repository
}

// FallbackEnvExample returns the bundled flat document shipped with the CLI.
// It is used when no remote document can be fetched.
func (d Descriptor) FallbackEnvExample() string {
	data, err := fallbackFS.ReadFile(d.fallback)
	if err != nil {
		return ""
	}
	return string(data)
}
