package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
)

// Flag names registered by BindFlags.
const (
	FlagFile     = "file"
	FlagConfig   = "config"
	FlagLogLevel = "log-level"
	FlagVerbose  = "verbose"
)

// Environment variables read by Resolve.
const (
	EnvConfig   = "TASKS_CONFIG"
	EnvFile     = "TASKS_FILE"
	EnvLogLevel = "TASKS_LOG_LEVEL"
)

// BindFlags registers the global flags on fs.
func BindFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagFile, "f", "", fmt.Sprintf("task file (default %q)", DefaultFile))
	fs.String(FlagConfig, "", "config file, YAML or TOML (default $"+EnvConfig+" or the user config dir)")
	fs.String(FlagLogLevel, "", fmt.Sprintf("log level: %s (default %q)", strings.Join(validLogLevels, ", "), DefaultLogLevel))
	fs.Bool(FlagVerbose, false, "shorthand for --log-level=debug")
}

// Resolve builds the effective config from defaults, the config file, the
// environment, and any flags in fs that were set explicitly.
func Resolve(fs *pflag.FlagSet) (*Config, error) {
	cfg := New()

	path, explicit := configPath(fs)
	if path != "" {
		loaded, err := Load(path)
		switch {
		case err == nil:
			cfg = loaded
		case !explicit && errors.Is(err, os.ErrNotExist):
			// no user config; keep defaults
		default:
			return nil, err
		}
	}

	if v := os.Getenv(EnvFile); v != "" {
		cfg.File = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	if fs != nil {
		if f := fs.Lookup(FlagFile); f != nil && f.Changed {
			cfg.File = f.Value.String()
		}
		if f := fs.Lookup(FlagLogLevel); f != nil && f.Changed {
			cfg.LogLevel = f.Value.String()
		}
		if verbose, err := fs.GetBool(FlagVerbose); err == nil && verbose {
			cfg.LogLevel = "debug"
		}
	}

	cfg.File = expandPath(cfg.File)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// configPath returns the config file to read and whether the user asked for
// it explicitly. An explicit file must exist; the default one may not.
func configPath(fs *pflag.FlagSet) (string, bool) {
	if fs != nil {
		if f := fs.Lookup(FlagConfig); f != nil && f.Changed && f.Value.String() != "" {
			return expandPath(f.Value.String()), true
		}
	}
	if v := os.Getenv(EnvConfig); v != "" {
		return expandPath(v), true
	}
	return DefaultConfigPath(), false
}

// DefaultConfigPath returns the per-user config file location, or "" if the
// user config directory cannot be determined.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tasks", "config.yaml")
}

// expandPath expands environment variables and a leading ~ in p.
func expandPath(p string) string {
	if p == "" {
		return p
	}
	expanded := os.ExpandEnv(p)
	if expanded == "~" || strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return filepath.Join(home, strings.TrimPrefix(expanded[1:], "/"))
	}
	return expanded
}
