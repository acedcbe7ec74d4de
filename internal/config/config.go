// Package config holds the settings of a front-end session: which dialect
// vocabularies to load, how to render diagnostics and how verbosely to log.
//
// A configuration is a small YAML document:
//
//	dialects: [ieee, fcl]
//	color: auto       # auto | always | never
//	log_level: info   # debug | info | warn | error
package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level session configuration.
type Config struct {
	// Dialects lists the vocabularies to load, in load order. Later
	// vocabularies override earlier ones on name collisions.
	Dialects []string `yaml:"dialects,omitempty"`

	// Color selects ANSI colour for rendered output.
	Color string `yaml:"color,omitempty"`

	// LogLevel is the minimum level logged by the session.
	LogLevel string `yaml:"log_level,omitempty"`
}

// Default returns the configuration used when none is supplied.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// ParseConfig parses configuration content from bytes.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.setDefaults()
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if len(c.Dialects) == 0 {
		c.Dialects = append([]string(nil), DefaultDialects...)
	}
	for i, d := range c.Dialects {
		c.Dialects[i] = strings.ToLower(strings.TrimSpace(d))
	}
	if c.Color == "" {
		c.Color = ColorAuto
	}
	if c.LogLevel == "" {
		c.LogLevel = LogLevelInfo
	}
}

// validate checks the configuration for semantic errors.
func (c *Config) validate(path string) error {
	for i, d := range c.Dialects {
		if d == "" {
			return fmt.Errorf("%s: dialects[%d]: empty dialect name", path, i)
		}
		if slices.Index(c.Dialects, d) != i {
			return fmt.Errorf("%s: dialects[%d]: %q listed twice", path, i, d)
		}
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%s: color: %q is not one of auto, always, never", path, c.Color)
	}

	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%s: log_level: %w", path, err)
	}
	return nil
}

// Level converts LogLevel to a slog level.
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case LogLevelDebug:
		return slog.LevelDebug, nil
	case LogLevelInfo, "":
		return slog.LevelInfo, nil
	case LogLevelWarn:
		return slog.LevelWarn, nil
	case LogLevelError:
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown level %q", c.LogLevel)
}
