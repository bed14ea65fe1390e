// Package config provides configuration management for ulidgen.
// Values come from centralized defaults, an optional YAML file and
// ULIDGEN_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/thalib/ulidgen/cmd/ulidgen/internal/constants"
)

const (
	// VersionMajor is the major version number
	VersionMajor = 0
	// VersionMinor is the minor version number
	VersionMinor = 2
	// VersionPatch is the patch version number
	VersionPatch = 0
)

// Version returns the version string in format {major}.{minor}.{patch}
func Version() string {
	return fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
}

// Defaults contains all default configuration values
// centralized in one place to avoid hardcoded literals
var Defaults = struct {
	Logging struct {
		Level  string
		Format string
		File   string
	}
	Output struct {
		Lowercase bool
	}
}{
	Logging: struct {
		Level  string
		Format string
		File   string
	}{
		Level:  "warn",
		Format: "console",
		File:   "",
	},
	Output: struct {
		Lowercase bool
	}{
		Lowercase: false,
	},
}

// AppConfig holds the application configuration.
// It is immutable after Load.
type AppConfig struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`

	// Source is the config file that was read, or "" when only defaults
	// and environment variables apply.
	Source string `mapstructure:"-"`
}

// LoggingConfig holds diagnostic logging configuration.
// Logs go to stderr unless File is set; stdout is reserved for the ULID.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // console, json, simple
	File   string `mapstructure:"file"`   // optional log file path
}

// OutputConfig controls how the generated ULID is printed.
type OutputConfig struct {
	Lowercase bool `mapstructure:"lowercase"` // print the ULID in lowercase
}

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"console": true, "json": true, "simple": true}
)

// DefaultPath returns $HOME/.ulidgen.yaml, or "" when the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, constants.ConfigFileName)
}

// Load initializes and loads the application configuration.
// An explicit configPath must exist; the default path is optional.
func Load(configPath string) (*AppConfig, error) {
	v := viper.New()

	// Set default values from centralized Defaults struct
	v.SetDefault("logging.level", Defaults.Logging.Level)
	v.SetDefault("logging.format", Defaults.Logging.Format)
	v.SetDefault("logging.file", Defaults.Logging.File)
	v.SetDefault("output.lowercase", Defaults.Output.Lowercase)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("yaml")

	path := configPath
	if path == "" {
		path = DefaultPath()
		if path != "" {
			if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
				path = ""
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.Is(err, os.ErrNotExist) || errors.As(err, &notFound) {
				return nil, fmt.Errorf("config file not found: %s", path)
			}
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.Source = v.ConfigFileUsed()
	return &cfg, nil
}

// validate normalizes case and rejects unknown enumerations.
func validate(cfg *AppConfig) error {
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = Defaults.Logging.Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = Defaults.Logging.Format
	}

	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging.level '%s', must be one of: debug, info, warn, error", cfg.Logging.Level)
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging.format '%s', must be one of: console, json, simple", cfg.Logging.Format)
	}

	return nil
}
