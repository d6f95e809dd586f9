package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for create-storefront settings.
const envPrefix = "STOREFRONT"

// Setting keys. Environment names are derived by upper-casing and prefixing,
// e.g. package_manager -> STOREFRONT_PACKAGE_MANAGER.
const (
	KeyPackageManager = "package_manager"
	KeySourceBaseURL  = "source_base_url"
	KeyFetchTimeout   = "fetch_timeout"
)

// Loader reads the settings file and the STOREFRONT_* environment.
// File values and environment values are kept apart so the resolver can
// report where each value came from.
type Loader struct {
	file *viper.Viper
	env  *viper.Viper
}

// NewLoader creates a new settings loader.
func NewLoader() *Loader {
	env := viper.New()
	env.SetEnvPrefix(envPrefix)
	env.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	env.AutomaticEnv()

	return &Loader{
		file: viper.New(),
		env:  env,
	}
}

// Load loads settings from the given file path.
// If path is empty, the default settings file path is used.
// A missing file yields empty settings.
func (l *Loader) Load(path string) (*Settings, error) {
	if path == "" {
		var err error
		path, err = GetSettingsFile()
		if err != nil {
			return nil, fmt.Errorf("getting settings file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("expanding settings path: %w", err)
	}

	l.file.SetConfigFile(expandedPath)
	l.file.SetConfigType("yaml")

	if err := l.file.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading settings file: %w", err)
		}
	}

	var settings Settings
	if err := l.file.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unmarshaling settings: %w", err)
	}

	return &settings, nil
}

// Env returns the environment value for a setting key, or "" when unset.
func (l *Loader) Env(key string) string {
	return strings.TrimSpace(l.env.GetString(key))
}

// EnvName returns the environment variable consulted for a setting key.
func EnvName(key string) string {
	return envPrefix + "_" + strings.ToUpper(key)
}
