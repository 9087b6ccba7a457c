// Package config loads the promptgen configuration.
//
// Values are read with priority: defaults -> file1 -> file2 -> ... -> env.
package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/portfoy"
	"github.com/etnz/portfoy/clipboard"
	"github.com/pelletier/go-toml/v2"
)

// Environment variables overriding the configuration files.
const (
	EnvConfigFile = "PORTFOY_CONFIG"
	EnvCurrency   = "PORTFOY_CURRENCY"
	EnvWindow     = "PORTFOY_WINDOW"
	EnvClipboard  = "PORTFOY_CLIPBOARD"
	EnvLogLevel   = "PORTFOY_LOG_LEVEL"
)

// Config represents the application configuration.
type Config struct {
	Prompt    PromptConfig       `toml:"prompt"`
	Clipboard ClipboardConfig    `toml:"clipboard"`
	Logging   LoggingConfig      `toml:"logging"`
	Input     portfoy.Paths      `toml:"input"`
	Risk      portfoy.RiskScores `toml:"risk"`
	Targets   map[string]float64 `toml:"targets"`
}

// PromptConfig contains prompt rendering settings.
type PromptConfig struct {
	Currency string `toml:"currency"`
	Window   int    `toml:"window"`
}

// ClipboardConfig contains clipboard settings.
type ClipboardConfig struct {
	Kind string `toml:"kind"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	targets := make(map[string]float64)
	for name, t := range portfoy.DefaultTargets() {
		targets[name] = t.Target
	}
	return &Config{
		Prompt: PromptConfig{
			Currency: portfoy.DefaultCurrency,
			Window:   5,
		},
		Clipboard: ClipboardConfig{
			Kind: clipboard.KindAuto,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
		Input:   portfoy.DefaultPaths(),
		Risk:    portfoy.DefaultRiskScores(),
		Targets: targets,
	}
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnvOverrides applies PORTFOY_* environment variable overrides to config.
func applyEnvOverrides(config *Config) error {
	if cur := os.Getenv(EnvCurrency); cur != "" {
		config.Prompt.Currency = strings.ToUpper(cur)
	}
	if window := os.Getenv(EnvWindow); window != "" {
		w, err := strconv.Atoi(window)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvWindow, window, err)
		}
		config.Prompt.Window = w
	}
	if kind := os.Getenv(EnvClipboard); kind != "" {
		config.Clipboard.Kind = kind
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		config.Logging.Level = level
	}
	return nil
}

// Validate checks the values that cannot be fixed later on.
func (c *Config) Validate() error {
	if c.Prompt.Window <= 0 {
		return fmt.Errorf("invalid prompt window %d, want a positive number", c.Prompt.Window)
	}
	if !slices.Contains(clipboard.Kinds, strings.ToLower(c.Clipboard.Kind)) {
		return fmt.Errorf("%w %q, want one of %s", clipboard.ErrUnknownKind, c.Clipboard.Kind, strings.Join(clipboard.Kinds, ", "))
	}
	if err := c.Input.Validate(); err != nil {
		return fmt.Errorf("invalid [input] section: %w", err)
	}
	return nil
}

// DecodeOptions returns the options to read a snapshot with this configuration.
func (c *Config) DecodeOptions() portfoy.DecodeOptions {
	targets := make(portfoy.Targets, len(c.Targets))
	for name, v := range c.Targets {
		targets[name] = portfoy.Target{Target: v}
	}
	return portfoy.DecodeOptions{
		Paths:      c.Input,
		RiskScores: c.Risk,
		Targets:    targets,
	}
}
