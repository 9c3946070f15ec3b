package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "./output", cfg.OutputDir)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "_", cfg.KeySeparator)
		assert.Equal(t, "voyage_{voyage}_{timestamp}.json", cfg.FilenamePattern)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := writeConfig(t, `
output_dir: /tmp/exports
log_level: debug
key_separator: "."
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/exports", cfg.OutputDir)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, ".", cfg.KeySeparator)
	})

	t.Run("unset file fields keep defaults", func(t *testing.T) {
		path := writeConfig(t, "output_dir: /tmp/exports\n")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "./records", cfg.InputDir)
		assert.Equal(t, "./logs/voyage.log", cfg.LogFile)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("VOYAGE_OUTPUT_DIR", "/env/out")
		t.Setenv("VOYAGE_LOG_LEVEL", "warn")

		path := writeConfig(t, "output_dir: /tmp/exports\n")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/env/out", cfg.OutputDir)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := writeConfig(t, "output_dir: [unclosed\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("invalid log level is rejected", func(t *testing.T) {
		path := writeConfig(t, "log_level: loud\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log_level")
	})
}
