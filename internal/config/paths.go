package config

import (
	"os"
	"path/filepath"
)

// SettingsEnvVar overrides the settings file location.
const SettingsEnvVar = "STOREFRONT_SETTINGS"

// Paths contains standard filesystem paths for create-storefront.
type Paths struct {
	// SettingsFile is the path to the settings file (~/.storefront/config.yaml).
	SettingsFile string

	// HomeDir is the create-storefront home directory (~/.storefront).
	HomeDir string
}

// DefaultPaths returns the default paths.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	home := filepath.Join(homeDir, ".storefront")

	return &Paths{
		SettingsFile: filepath.Join(home, "config.yaml"),
		HomeDir:      home,
	}, nil
}

// GetSettingsFile returns the settings file path.
// If STOREFRONT_SETTINGS is set, it takes precedence.
func GetSettingsFile() (string, error) {
	if envPath := os.Getenv(SettingsEnvVar); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.SettingsFile, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}
