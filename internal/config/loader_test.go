package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.file)
	assert.NotNil(t, loader.env)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads settings from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		settingsFile := filepath.Join(tmpDir, "config.yaml")

		content := `
packageManager: pnpm
sourceBaseURL: https://mirror.example.com
fetchTimeout: 30s
log:
  timestamps: false
`
		require.NoError(t, os.WriteFile(settingsFile, []byte(content), 0o644))

		settings, err := NewLoader().Load(settingsFile)

		require.NoError(t, err)
		assert.Equal(t, "pnpm", settings.PackageManager)
		assert.Equal(t, "https://mirror.example.com", settings.SourceBaseURL)
		assert.Equal(t, 30*time.Second, settings.FetchTimeout)
		require.NotNil(t, settings.Log.Timestamps)
		assert.False(t, *settings.Log.Timestamps)
	})

	t.Run("returns empty settings for missing file", func(t *testing.T) {
		settingsFile := filepath.Join(t.TempDir(), "nonexistent.yaml")

		settings, err := NewLoader().Load(settingsFile)

		require.NoError(t, err)
		assert.Empty(t, settings.PackageManager)
		assert.Zero(t, settings.FetchTimeout)
	})

	t.Run("rejects invalid yaml", func(t *testing.T) {
		settingsFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(settingsFile, []byte("packageManager: [unclosed"), 0o644))

		_, err := NewLoader().Load(settingsFile)
		assert.Error(t, err)
	})

	t.Run("uses STOREFRONT_SETTINGS when path is empty", func(t *testing.T) {
		settingsFile := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(settingsFile, []byte("packageManager: yarn\n"), 0o644))
		t.Setenv(SettingsEnvVar, settingsFile)

		settings, err := NewLoader().Load("")

		require.NoError(t, err)
		assert.Equal(t, "yarn", settings.PackageManager)
	})

	t.Run("env values are kept apart from file values", func(t *testing.T) {
		t.Setenv("STOREFRONT_PACKAGE_MANAGER", "pnpm")
		settingsFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(settingsFile, []byte("packageManager: yarn\n"), 0o644))

		loader := NewLoader()
		settings, err := loader.Load(settingsFile)

		require.NoError(t, err)
		assert.Equal(t, "yarn", settings.PackageManager)
		assert.Equal(t, "pnpm", loader.Env(KeyPackageManager))
	})
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "STOREFRONT_PACKAGE_MANAGER", EnvName(KeyPackageManager))
	assert.Equal(t, "STOREFRONT_SOURCE_BASE_URL", EnvName(KeySourceBaseURL))
	assert.Equal(t, "STOREFRONT_FETCH_TIMEOUT", EnvName(KeyFetchTimeout))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(DefaultSettings()))

	err := Validate(&Settings{SourceBaseURL: "ftp://host", FetchTimeout: -time.Second})
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
	assert.Equal(t, "sourceBaseURL", verrs[0].Field)
	assert.Equal(t, "fetchTimeout", verrs[1].Field)
}
