// Package config loads bookshelf settings from a YAML file with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	EnvConfigPath = "BOOKSHELF_CONFIG"
	EnvLogLevel   = "BOOKSHELF_LOG_LEVEL"
	EnvLogFile    = "BOOKSHELF_LOG_FILE"
	EnvExportDir  = "BOOKSHELF_EXPORT_DIR"
)

// Config holds all bookshelf configuration.
type Config struct {
	Seed    SeedConfig    `yaml:"seed"`
	Logging LoggingConfig `yaml:"logging"`
	Export  ExportConfig  `yaml:"export"`
}

// SeedConfig controls what a fresh catalog starts with.
type SeedConfig struct {
	// Samples seeds the three built-in sample books before Books.
	Samples bool         `yaml:"samples"`
	Books   []BookConfig `yaml:"books"`
}

// BookConfig is a seed book as written in the config file. Pages is kept as a
// string so it goes through the same validation as the intake form.
type BookConfig struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Pages  string `yaml:"pages"`
	Read   bool   `yaml:"read"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty disables logging
}

type ExportConfig struct {
	Dir   string `yaml:"dir"`
	Title string `yaml:"title"`
}

func DefaultConfig() *Config {
	home := homeDir()
	return &Config{
		Seed: SeedConfig{
			Samples: true,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(home, ".bookshelf", "bookshelf.log"),
		},
		Export: ExportConfig{
			Dir:   filepath.Join(home, "Downloads"),
			Title: "My Library",
		},
	}
}

// DefaultPath returns $BOOKSHELF_CONFIG or ~/.bookshelf/config.yaml.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return filepath.Join(homeDir(), ".bookshelf", "config.yaml")
}

// Load reads the config at path on top of the defaults and applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		c.Logging.File = v
	}
	if v := os.Getenv(EnvExportDir); v != "" {
		c.Export.Dir = v
	}
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
