package config

import (
	"fmt"
	"sort"
	"time"

	oerrors "github.com/alphasquad/create-storefront/internal/errors"
	"github.com/alphasquad/create-storefront/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from the settings file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a single setting after precedence has been applied.
type ResolvedValue struct {
	// Key is the setting key.
	Key string
	// Value is the effective value.
	Value string
	// Source indicates where the value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveOptions contains the candidate values for one setting.
// Empty strings mean "not set".
type ResolveOptions struct {
	Key         string
	FlagValue   string
	EnvValue    string
	ConfigValue string
	Default     string
}

// Resolve applies the precedence flag > env > config > default.
func Resolve(opts ResolveOptions) ResolvedValue {
	result := ResolvedValue{
		Key:      opts.Key,
		Shadowed: make(map[ConfigSource]string),
	}

	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, opts.FlagValue},
		{SourceEnv, opts.EnvValue},
		{SourceConfig, opts.ConfigValue},
		{SourceDefault, opts.Default},
	}

	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}

	return result
}

// ResolveSettingsOptions contains the inputs for settings resolution.
type ResolveSettingsOptions struct {
	// PackageManagerFlag is the --package-manager flag value (empty if not set).
	PackageManagerFlag string

	// Settings holds the settings file values. May be nil.
	Settings *Settings

	// Env looks up STOREFRONT_* values by setting key. May be nil.
	Env func(key string) string
}

// Resolved holds the effective CLI settings.
type Resolved struct {
	PackageManager string
	SourceBaseURL  string
	FetchTimeout   time.Duration

	// Values records every resolution for debug logging.
	Values []ResolvedValue
}

// ResolveSettings resolves package manager, source base URL and fetch timeout.
func ResolveSettings(opts ResolveSettingsOptions) (*Resolved, error) {
	settings := opts.Settings
	if settings == nil {
		settings = &Settings{}
	}
	env := opts.Env
	if env == nil {
		env = func(string) string { return "" }
	}

	var configTimeout string
	if settings.FetchTimeout > 0 {
		configTimeout = settings.FetchTimeout.String()
	}

	pm := Resolve(ResolveOptions{
		Key:         KeyPackageManager,
		FlagValue:   opts.PackageManagerFlag,
		EnvValue:    env(KeyPackageManager),
		ConfigValue: settings.PackageManager,
		Default:     DefaultPackageManager,
	})
	base := Resolve(ResolveOptions{
		Key:         KeySourceBaseURL,
		EnvValue:    env(KeySourceBaseURL),
		ConfigValue: settings.SourceBaseURL,
		Default:     DefaultSourceBaseURL,
	})
	timeout := Resolve(ResolveOptions{
		Key:         KeyFetchTimeout,
		EnvValue:    env(KeyFetchTimeout),
		ConfigValue: configTimeout,
		Default:     DefaultFetchTimeout.String(),
	})

	if err := ValidateBaseURL(base.Value); err != nil {
		return nil, oerrors.NewValidationError(err.Error(), string(base.Source), KeySourceBaseURL,
			fmt.Sprintf("Set %s to an absolute http(s) URL.", EnvName(KeySourceBaseURL)))
	}

	d, err := time.ParseDuration(timeout.Value)
	if err != nil || d <= 0 {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("invalid fetch timeout %q", timeout.Value),
			string(timeout.Source), KeyFetchTimeout,
			"Use a positive Go duration such as 10s or 1m.")
	}

	return &Resolved{
		PackageManager: pm.Value,
		SourceBaseURL:  base.Value,
		FetchTimeout:   d,
		Values:         []ResolvedValue{pm, base, timeout},
	}, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)

		sources := make([]string, 0, len(v.Shadowed))
		for source := range v.Shadowed {
			sources = append(sources, string(source))
		}
		sort.Strings(sources)
		for _, source := range sources {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", v.Shadowed[ConfigSource(source)],
			)
		}
	}
}
