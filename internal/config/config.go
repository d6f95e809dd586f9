// Package config provides CLI settings loading, precedence resolution and
// external configuration payload parsing.
package config

import "time"

// Built-in defaults.
const (
	// DefaultPackageManager is used when no flag, env or settings value is given.
	DefaultPackageManager = "npm"

	// DefaultSourceBaseURL is the host serving template documents.
	DefaultSourceBaseURL = "https://raw.githubusercontent.com"

	// DefaultFetchTimeout bounds each template document request.
	DefaultFetchTimeout = 10 * time.Second
)

// Settings represents the create-storefront CLI settings file.
// Loaded from ~/.storefront/config.yaml.
type Settings struct {
	// PackageManager is the default package manager (npm, pnpm or yarn).
	// Env: STOREFRONT_PACKAGE_MANAGER
	PackageManager string `mapstructure:"packageManager" json:"packageManager,omitempty"`

	// SourceBaseURL is the base URL of the raw template document host.
	// Env: STOREFRONT_SOURCE_BASE_URL
	SourceBaseURL string `mapstructure:"sourceBaseURL" json:"sourceBaseURL,omitempty"`

	// FetchTimeout bounds each template document request.
	// Env: STOREFRONT_FETCH_TIMEOUT
	FetchTimeout time.Duration `mapstructure:"fetchTimeout" json:"fetchTimeout,omitempty"`

	// Log contains logging-related settings.
	Log LogSettings `mapstructure:"log" json:"log,omitempty"`
}

// LogSettings contains logging-related settings.
type LogSettings struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" json:"timestamps,omitempty"`
}

// DefaultSettings returns Settings with all default values populated.
func DefaultSettings() *Settings {
	return &Settings{
		PackageManager: DefaultPackageManager,
		SourceBaseURL:  DefaultSourceBaseURL,
		FetchTimeout:   DefaultFetchTimeout,
	}
}
