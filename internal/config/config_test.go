package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("GLFORGE_DOCS_URL", "")
	t.Setenv("GLFORGE_DEBUG", "")
	t.Setenv("GLFORGE_LOG_LEVEL", "")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "glforge", cfg.Server.Name)
	assert.Equal(t, "https://docs.genlayer.com", cfg.Docs.BaseURL)
	assert.False(t, cfg.Logging.DebugMode)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("GLFORGE_DOCS_URL", "")
	t.Setenv("GLFORGE_DEBUG", "")
	t.Setenv("GLFORGE_LOG_LEVEL", "")

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".glforge"), 0755))
	content := `server:
  name: customforge
  version: 9.9.9
docs:
  base_url: https://docs.internal.example.com
logging:
  debug_mode: true
  level: debug
  categories:
    docs: false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".glforge", "config.yaml"), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "customforge", cfg.Server.Name)
	assert.Equal(t, "9.9.9", cfg.Server.Version)
	assert.Equal(t, "https://docs.internal.example.com", cfg.Docs.BaseURL)
	assert.True(t, cfg.Logging.DebugMode)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Categories["docs"])
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".glforge"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".glforge", "config.yaml"), []byte("{not yaml"), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("GLFORGE_DOCS_URL overrides base URL", func(t *testing.T) {
		t.Setenv("GLFORGE_DOCS_URL", "https://override.example.com")

		cfg := Default()
		cfg.applyEnvOverrides()
		assert.Equal(t, "https://override.example.com", cfg.Docs.BaseURL)
	})

	t.Run("GLFORGE_DEBUG enables debug mode", func(t *testing.T) {
		t.Setenv("GLFORGE_DEBUG", "true")

		cfg := Default()
		cfg.applyEnvOverrides()
		assert.True(t, cfg.Logging.DebugMode)
	})

	t.Run("GLFORGE_DEBUG=0 disables debug mode", func(t *testing.T) {
		t.Setenv("GLFORGE_DEBUG", "0")

		cfg := Default()
		cfg.Logging.DebugMode = true
		cfg.applyEnvOverrides()
		assert.False(t, cfg.Logging.DebugMode)
	})

	t.Run("GLFORGE_LOG_LEVEL overrides level", func(t *testing.T) {
		t.Setenv("GLFORGE_LOG_LEVEL", "warn")

		cfg := Default()
		cfg.applyEnvOverrides()
		assert.Equal(t, "warn", cfg.Logging.Level)
	})
}
