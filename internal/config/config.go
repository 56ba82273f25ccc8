// Package config loads huffstat settings from defaults, an optional config
// file and HUFFSTAT_* environment variables, in increasing order of
// precedence.  Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/chronos-tachyon/quadhuff/internal/report"
)

// EnvPrefix is the prefix of the environment variables Load consults, e.g.
// HUFFSTAT_FIXED_TABLE.
const EnvPrefix = "HUFFSTAT"

// ErrNoInput is returned by Validate when no input file was configured.
var ErrNoInput = errors.New("config: no input file")

// Config holds the settings of one huffstat run.
type Config struct {
	// Input is the text file to analyse.
	Input string `mapstructure:"input"`

	// FixedTable is a file of fixed codes to compare against.  When
	// empty, a fixed-width code over the input's own symbols is used.
	FixedTable string `mapstructure:"fixed_table"`

	// FoldCase lower-cases the input before counting.
	FoldCase bool `mapstructure:"fold_case"`

	// Format is "table" or "json".
	Format string `mapstructure:"format"`

	// PrintBits also writes the encoded text, once per code.
	PrintBits bool `mapstructure:"print_bits"`

	// LogLevel is a zerolog level name.
	LogLevel string `mapstructure:"log_level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input", "")
	v.SetDefault("fixed_table", "")
	v.SetDefault("fold_case", true)
	v.SetDefault("format", string(report.FormatTable))
	v.SetDefault("print_bits", false)
	v.SetDefault("log_level", zerolog.LevelInfoValue)
}

// Load builds a Config.  path names an optional config file in any format
// viper understands (YAML, TOML, JSON, ...); pass "" to skip it.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config.Load: %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the settings can be acted on.
func (c *Config) Validate() error {
	if c.Input == "" {
		return ErrNoInput
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: format: %w", err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	return nil
}
