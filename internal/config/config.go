// Package config loads checker defaults from an optional .turnstile.yaml
// file. Flags always win over the file; the file wins over built-ins.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no explicit
// config path is given.
const DefaultFileName = ".turnstile.yaml"

// Config holds CLI defaults.
type Config struct {
	// BaseDir is the default directory of trace documents for `check`.
	BaseDir string `yaml:"base_dir"`

	// FixturesDir is the default fixture corpus directory for `fixtures`.
	FixturesDir string `yaml:"fixtures_dir"`

	// Format is the default output format ("text" or "json").
	Format string `yaml:"format"`

	// HistoryDB is the SQLite path used when runs are recorded.
	HistoryDB string `yaml:"history_db"`

	// LogLevel is the zerolog level for diagnostic output.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BaseDir:     ".",
		FixturesDir: "fixtures",
		Format:      "text",
		HistoryDB:   ".turnstile-history.db",
		LogLevel:    "warn",
	}
}

// Load reads a config file and merges it onto the defaults. Unknown keys
// are rejected so typos surface immediately.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads the explicit path if given, otherwise the default file if
// it exists, otherwise the built-in defaults.
func Resolve(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	if _, err := os.Stat(DefaultFileName); err == nil {
		return Load(DefaultFileName)
	}
	return Default(), nil
}
