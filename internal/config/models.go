package config

import (
	"fmt"
	"slices"
	"strings"
)

// Config represents the entire user configuration file.
// Every key has a default, so a missing file is a valid configuration.
type Config struct {
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Decode  DecodeConfig  `mapstructure:"decode" yaml:"decode"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// OutputConfig controls how decoded frames are rendered.
type OutputConfig struct {
	Format         string `mapstructure:"format" yaml:"format"`                   // text, compact, detailed, json or yaml
	PayloadColumns int    `mapstructure:"payload_columns" yaml:"payload_columns"` // Hex bytes per payload row (0 = one row)
	ShowRaw        bool   `mapstructure:"show_raw" yaml:"show_raw"`               // Print the raw frame bytes before the decode
}

// DecodeConfig controls how input is turned into frames.
type DecodeConfig struct {
	Policy string `mapstructure:"policy" yaml:"policy"` // fallback, direct or extract
	Labels bool   `mapstructure:"labels" yaml:"labels"` // Emit swing position labels
}

// LoggingConfig mirrors the logging package options.
type LoggingConfig struct {
	Level string        `mapstructure:"level" yaml:"level"` // Empty means silent
	File  LogFileConfig `mapstructure:"file" yaml:"file"`
}

// LogFileConfig configures the rotating log file. An empty filename disables it.
type LogFileConfig struct {
	Filename   string `mapstructure:"filename" yaml:"filename"`
	MaxSizeMB  int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// Values accepted in the config file
var (
	OutputFormats  = []string{"text", "compact", "detailed", "json", "yaml"}
	DecodePolicies = []string{"fallback", "direct", "extract"}
	LogLevels      = []string{"", "debug", "info", "warn", "warning", "error"}
)

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format:         "text",
			PayloadColumns: 0,
			ShowRaw:        false,
		},
		Decode: DecodeConfig{
			Policy: "fallback",
			Labels: true,
		},
		Logging: LoggingConfig{
			Level: "",
			File: LogFileConfig{
				MaxSizeMB:  10,
				MaxBackups: 3,
				MaxAgeDays: 28,
				Compress:   false,
			},
		},
	}
}

// Validate checks enumerated values and ranges.
func (c *Config) Validate() error {
	if !slices.Contains(OutputFormats, strings.ToLower(c.Output.Format)) {
		return fmt.Errorf("output.format: unknown format %q (valid: %s)", c.Output.Format, strings.Join(OutputFormats, ", "))
	}
	if c.Output.PayloadColumns < 0 {
		return fmt.Errorf("output.payload_columns: must not be negative, got %d", c.Output.PayloadColumns)
	}
	if !slices.Contains(DecodePolicies, strings.ToLower(c.Decode.Policy)) {
		return fmt.Errorf("decode.policy: unknown policy %q (valid: %s)", c.Decode.Policy, strings.Join(DecodePolicies, ", "))
	}
	if !slices.Contains(LogLevels, strings.ToLower(c.Logging.Level)) {
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	f := c.Logging.File
	if f.MaxSizeMB < 0 || f.MaxBackups < 0 || f.MaxAgeDays < 0 {
		return fmt.Errorf("logging.file: size, backups and age must not be negative")
	}
	return nil
}
