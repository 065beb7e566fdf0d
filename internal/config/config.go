// Package config loads jpicheck settings.
//
// Settings come from, in increasing precedence: built-in defaults, an
// optional .jpicheck.{yaml,toml,json} file, JPICHECK_* environment variables
// and command-line flags. Class directory arguments may be glob patterns
// and are resolved by ResolveRoots.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "jpicheck"

	// ConfigFileName is the name of the config file looked up in the working
	// directory, without extension.
	ConfigFileName = ".jpicheck"

	// EnvPrefix prefixes every environment variable jpicheck reads.
	EnvPrefix = "JPICHECK"

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"
)

// ErrNoOutput indicates no manifest destination was configured.
var ErrNoOutput = errors.New("no output file configured")

// flagKeys maps config keys to the flag names bound to them.
var flagKeys = map[string]string{
	"output":    "output",
	"log_level": "log-level",
	"diff":      "diff",
	"dry_run":   "dry-run",
}

// Config holds the settings for one check.
type Config struct {
	// ClassesDirs are the class output roots or glob patterns, in order.
	ClassesDirs []string `mapstructure:"classes_dirs"`

	// Output is the manifest destination.
	Output string `mapstructure:"output"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	// Diff prints the change against the previous manifest.
	Diff bool `mapstructure:"diff"`

	// DryRun runs every check without writing the manifest.
	DryRun bool `mapstructure:"dry_run"`
}

// LoadOptions controls where Load looks for settings.
type LoadOptions struct {
	// ConfigFile is an explicit config file. It must exist when set.
	ConfigFile string

	// SearchDir is searched for ConfigFileName when ConfigFile is empty.
	SearchDir string

	// Flags are bound over file and environment values when changed.
	Flags *pflag.FlagSet
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
	}
}

// Load merges defaults, config file, environment and flags.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("classes_dirs", defaults.ClassesDirs)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("diff", defaults.Diff)
	v.SetDefault("dry_run", defaults.DryRun)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", opts.ConfigFile, err)
		}
	} else if opts.SearchDir != "" {
		v.SetConfigName(ConfigFileName)
		v.AddConfigPath(opts.SearchDir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	if opts.Flags != nil {
		for key, name := range flagKeys {
			flag := opts.Flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, nil
}

// Validate checks settings that every check needs.
func (c *Config) Validate() error {
	if c.Output == "" {
		return ErrNoOutput
	}
	return nil
}
