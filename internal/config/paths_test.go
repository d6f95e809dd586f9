package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaths(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	paths, err := DefaultPaths()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(homeDir, ".storefront"), paths.HomeDir)
	assert.Equal(t, filepath.Join(homeDir, ".storefront", "config.yaml"), paths.SettingsFile)
}

func TestGetSettingsFile(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv(SettingsEnvVar, "/custom/settings.yaml")

		path, err := GetSettingsFile()
		require.NoError(t, err)
		assert.Equal(t, "/custom/settings.yaml", path)
	})

	t.Run("default location", func(t *testing.T) {
		t.Setenv(SettingsEnvVar, "")

		path, err := GetSettingsFile()
		require.NoError(t, err)
		assert.Equal(t, "config.yaml", filepath.Base(path))
	})
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty path",
			input:    "",
			expected: "",
		},
		{
			name:     "absolute path",
			input:    "/absolute/path",
			expected: "/absolute/path",
		},
		{
			name:     "relative path",
			input:    "relative/path",
			expected: "relative/path",
		},
		{
			name:     "home directory only",
			input:    "~",
			expected: homeDir,
		},
		{
			name:     "tilde with path",
			input:    "~/.storefront/config.yaml",
			expected: filepath.Join(homeDir, ".storefront", "config.yaml"),
		},
		{
			name:     "tilde username pattern (not expanded)",
			input:    "~username/file",
			expected: "~username/file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
