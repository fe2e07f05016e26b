package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvExportDir, "")
	// register a restore, then drop the variable so the file value wins
	t.Setenv(EnvLogFile, "")
	os.Unsetenv(EnvLogFile)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.Seed.Samples)
	assert.Empty(t, cfg.Seed.Books)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "bookshelf.log", filepath.Base(cfg.Logging.File))
	assert.Equal(t, "My Library", cfg.Export.Title)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
seed:
  samples: false
  books:
    - title: Dune
      author: Frank Herbert
      pages: "412"
      read: true
logging:
  level: debug
export:
  title: Shelf
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Seed.Samples)
	require.Len(t, cfg.Seed.Books, 1)
	assert.Equal(t, BookConfig{Title: "Dune", Author: "Frank Herbert", Pages: "412", Read: true}, cfg.Seed.Books[0])
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "Shelf", cfg.Export.Title)
	// untouched keys keep their defaults
	assert.Equal(t, DefaultConfig().Export.Dir, cfg.Export.Dir)
}

func TestLoadUnquotedPages(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "seed:\n  books:\n    - {title: It, author: Steven King, pages: 1138}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Seed.Books, 1)
	assert.Equal(t, "1138", cfg.Seed.Books[0].Pages)
}

func TestLoadInvalidYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "seed: [unterminated")

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: debug\n  file: /tmp/from-file.log\n")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFile, "")
	t.Setenv(EnvExportDir, "/srv/exports")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "", cfg.Logging.File, "an explicitly empty log file disables logging")
	assert.Equal(t, "/srv/exports", cfg.Export.Dir)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/bookshelf.yaml")
	assert.Equal(t, "/etc/bookshelf.yaml", DefaultPath())

	t.Setenv(EnvConfigPath, "")
	assert.Equal(t, "config.yaml", filepath.Base(DefaultPath()))
}
