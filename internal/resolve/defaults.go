package resolve

import "github.com/alphasquad/create-storefront/internal/schema"

// Keys with tenant-derived defaults.
const (
	KeyTenantName    = "NEXT_PUBLIC_TENANT_NAME"
	KeyBrandName     = "NEXT_PUBLIC_BRAND_NAME"
	KeySiteURL       = "NEXT_PUBLIC_SITE_URL"
	KeyStorefrontURL = "NEXT_PUBLIC_STOREFRONT_URL"
)

// LocalDevURL is offered for site URLs without a declared default.
const LocalDevURL = "http://localhost:3000"

// brandPlaceholders are template brand names replaced by the tenant display name.
var brandPlaceholders = map[string]bool{
	"":                  true,
	"AutoParts Store":   true,
	"Saleor Storefront": true,
}

// ComputeDefault returns the effective default offered for entry.
func ComputeDefault(entry schema.Entry, tenant Tenant) string {
	switch entry.Key {
	case KeyTenantName:
		return tenant.Slug
	case KeyBrandName:
		if brandPlaceholders[entry.Default] {
			return tenant.DisplayName
		}
	case KeySiteURL, KeyStorefrontURL:
		if entry.Default == "" {
			return LocalDevURL
		}
	}
	return entry.Default
}
