// SPDX-License-Identifier: MIT

// Package config holds the settings of the squares command: the raw number
// and weight fragments plus diagnostics options. Values are layered as
// built-in defaults, then an optional YAML file, then command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Log level and format names accepted by Validate.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	FormatText = "text"
	FormatJSON = "json"
)

var (
	// ErrInvalidLogLevel is returned for a level outside debug|info|warn|error.
	ErrInvalidLogLevel = errors.New("config: invalid log level")

	// ErrInvalidLogFormat is returned for a format other than text or json.
	ErrInvalidLogFormat = errors.New("config: invalid log format")
)

// Config is the fully resolved input of one invocation.
type Config struct {
	Numbers   []string `yaml:"list_of_numbers"`
	Weights   []string `yaml:"list_of_weights"`
	LogLevel  string   `yaml:"log_level"`
	LogFormat string   `yaml:"log_format"`
}

// Default returns the built-in settings. Each call allocates new slices so
// callers may modify the result freely.
func Default() Config {
	return Config{
		Numbers:   []string{"1", "2", "4"},
		Weights:   []string{"1", "1", "1"},
		LogLevel:  LevelWarn,
		LogFormat: FormatText,
	}
}

// Load returns Default() overlaid with the YAML file at path. An empty path
// skips the file. Keys missing from the file keep their default value; an
// explicitly empty list (list_of_numbers: []) replaces the default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// decode applies data onto cfg, rejecting unknown keys.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Validate normalizes case and checks the diagnostics enumerations.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
	default:
		return fmt.Errorf("%w %q: must be 'debug', 'info', 'warn', or 'error'", ErrInvalidLogLevel, c.LogLevel)
	}

	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w %q: must be 'text' or 'json'", ErrInvalidLogFormat, c.LogFormat)
	}

	return nil
}
