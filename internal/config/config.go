// Package config loads polyglot's settings from an optional config file and
// POLYGLOT_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	perrors "github.com/matzehuels/polyglot/pkg/errors"
	"github.com/matzehuels/polyglot/pkg/processor"
)

// EnvPrefix prefixes environment overrides, e.g. POLYGLOT_DUMP_POM.
const EnvPrefix = "POLYGLOT"

// Config holds all application configuration.
type Config struct {
	Dump DumpConfig `mapstructure:"dump"`
	Log  LogConfig  `mapstructure:"log"`
}

// DumpConfig selects a file receiving a copy of every translation.
type DumpConfig struct {
	POM      string `mapstructure:"pom"`
	ReadOnly bool   `mapstructure:"readonly"`
}

// LogConfig sets the default log level; --verbose overrides it.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks configuration for issues and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.Dump.POM != "" {
		if err := perrors.ValidateDumpName(c.Dump.POM); err != nil {
			warnings = append(warnings, fmt.Sprintf("dump.pom %q: %s", c.Dump.POM, perrors.UserMessage(err)))
		}
	}
	if c.Dump.ReadOnly && c.Dump.POM == "" {
		warnings = append(warnings, "dump.readonly has no effect without dump.pom")
	}

	if c.Log.Level != "" && !isLogLevel(c.Log.Level) {
		warnings = append(warnings, fmt.Sprintf("log.level %q is not one of %s", c.Log.Level, strings.Join(logLevels, ", ")))
	}

	return warnings
}

// ProcessorOptions returns the read pipeline options of c.
func (c *Config) ProcessorOptions() processor.Options {
	return processor.Options{
		DumpPOM:      c.Dump.POM,
		DumpReadOnly: c.Dump.ReadOnly,
	}
}

// Load reads configuration from path, if set, and from the environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("dump.pom", "")
	v.SetDefault("dump.readonly", false)
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return &cfg, nil
}

func isLogLevel(s string) bool {
	for _, l := range logLevels {
		if strings.EqualFold(s, l) {
			return true
		}
	}
	return false
}
