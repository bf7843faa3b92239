package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, cfg map[string]interface{}) string {
	t.Helper()
	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.File)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "@calculator_history", cfg.Storage.Key)
	assert.Equal(t, "calc-wizard.db", cfg.Storage.SQLiteFile)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "1/2/2006, 3:04:05 PM", cfg.Display.DateLayout)
	assert.Equal(t, "dark", cfg.Display.Theme)
}

func TestYAMLOverridesDefaults(t *testing.T) {
	path := writeConfig(t, map[string]interface{}{
		"storage": map[string]interface{}{"backend": "sqlite", "dir": "/tmp/calc"},
		"display": map[string]interface{}{"theme": "light"},
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/calc", cfg.Storage.Dir)
	assert.Equal(t, "light", cfg.Display.Theme)
	// untouched keys keep their defaults
	assert.Equal(t, "@calculator_history", cfg.Storage.Key)

	opts := cfg.StorageOptions()
	assert.Equal(t, "sqlite", opts.Backend)
	assert.Equal(t, "/tmp/calc", opts.Dir)
}

func TestEnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, map[string]interface{}{
		"storage": map[string]interface{}{"backend": "sqlite"},
	})
	t.Setenv("CALC_STORAGE_BACKEND", "memory")
	t.Setenv("CALC_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestInvalidConfig(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "explicit missing file must fail")

	path := writeConfig(t, map[string]interface{}{
		"storage": map[string]interface{}{"backend": "s3"},
	})
	_, err = Load(path)
	assert.ErrorContains(t, err, `invalid storage.backend "s3"`)

	path = writeConfig(t, map[string]interface{}{
		"display": map[string]interface{}{"theme": "neon"},
	})
	_, err = Load(path)
	assert.ErrorContains(t, err, `invalid display.theme "neon"`)

	t.Setenv("CALC_LOG_LEVEL", "verbose")
	_, err = Load(writeConfig(t, map[string]interface{}{}))
	assert.ErrorContains(t, err, "invalid log.level")
}
