package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabprep/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "data", cfg.Paths.DataDir)
	assert.Equal(t, "extracted_data", cfg.Paths.StagingDir)
	assert.Equal(t, "logs", cfg.Paths.LogsDir)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TABPREP_PATHS_STAGING_DIR", "/tmp/staging")
	t.Setenv("TABPREP_LOGGING_LEVEL", "debug")

	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/staging", cfg.Paths.StagingDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched fields keep their defaults.
	assert.Equal(t, "data", cfg.Paths.DataDir)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "tabprep.yaml")
	content := `
logging:
  level: warn
paths:
  staging_dir: /var/tabprep/staging
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	cfg, err := config.LoadFrom(file)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "/var/tabprep/staging", cfg.Paths.StagingDir)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "tabprep.yaml")
	require.NoError(t, os.WriteFile(file, []byte("logging:\n  level: warn\n"), 0644))

	t.Setenv("TABPREP_LOGGING_LEVEL", "error")

	cfg, err := config.LoadFrom(file)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoadRejectsInvalidLevel(t *testing.T) {
	t.Setenv("TABPREP_LOGGING_LEVEL", "verbose")

	_, err := config.LoadFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
