// Package config handles configuration loading and defaults.
//
// Configuration is resolved from several sources, each overriding the last:
//  1. Built-in defaults
//  2. Config file (--config, $TASKS_CONFIG, or the user config directory)
//  3. Environment variables (TASKS_FILE, TASKS_LOG_LEVEL)
//  4. CLI flags
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	// CurrentVersion is the config schema version written by Save.
	CurrentVersion = 1
	// DefaultFile is the task file used when nothing else is configured.
	DefaultFile = "data.txt"
	// DefaultLogLevel keeps log output out of normal command output.
	DefaultLogLevel = "warn"
)

var validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}

// Config holds the settings for one invocation.
type Config struct {
	Version  int    `yaml:"version" toml:"version"`
	File     string `yaml:"file" toml:"file"`
	LogLevel string `yaml:"log_level" toml:"log_level"`
}

// New creates a config with defaults.
func New() *Config {
	return &Config{
		Version:  CurrentVersion,
		File:     DefaultFile,
		LogLevel: DefaultLogLevel,
	}
}

// Validate checks the config for errors.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version %d", c.Version)
	}
	if strings.TrimSpace(c.File) == "" {
		return fmt.Errorf("task file path cannot be empty")
	}
	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("invalid log level '%s': must be one of %s", c.LogLevel, strings.Join(validLogLevels, ", "))
	}
	return nil
}

// Load reads a config file. The format is chosen from the extension:
// .toml for TOML, anything else for YAML. Missing fields get defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{}
	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the config to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var data []byte
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		data = buf.Bytes()
	} else {
		out, err := yaml.Marshal(c)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		data = out
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	defaults := New()
	if c.Version == 0 {
		c.Version = defaults.Version
	}
	if c.File == "" {
		c.File = defaults.File
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func isValidLogLevel(level string) bool {
	for _, l := range validLogLevels {
		if strings.EqualFold(level, l) {
			return true
		}
	}
	return false
}
