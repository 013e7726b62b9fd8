package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/planforge/planlint/internal/core/validation"
	"github.com/planforge/planlint/internal/shell/report"
)

// =============================================================================
// Config Types
// =============================================================================

// Config holds all application configuration.
type Config struct {
	Lint LintConfig `mapstructure:"lint"`
	Log  LogConfig  `mapstructure:"log"`
}

// LintConfig holds validation run configuration.
type LintConfig struct {
	// Mode is the validation mode: edit, save, publish or load.
	Mode string `mapstructure:"mode"`

	// FailOn decides which findings make the run fail.
	// "critical" - fail only when critical issues are found
	// "any"      - fail when any issue is found
	FailOn string `mapstructure:"fail_on"`

	// Format is the report output format: text or json.
	Format string `mapstructure:"format"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// =============================================================================
// Config Loading
// =============================================================================

// LoadConfig loads configuration from file and environment.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("lint.mode", "publish")
	v.SetDefault("lint.fail_on", "critical")
	v.SetDefault("lint.format", "text")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Load from file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			// Only return error if file was explicitly specified and is invalid
			if _, ok := err.(viper.ConfigParseError); ok {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
			// File not found is OK, we'll use defaults
		}
	}

	// Enable environment variable overrides
	v.SetEnvPrefix("PLANLINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configured enum values.
func (c *Config) Validate() error {
	if !validation.Mode(c.Lint.Mode).IsValid() {
		return fmt.Errorf("invalid mode %q (expected edit, save, publish or load)", c.Lint.Mode)
	}
	switch c.Lint.FailOn {
	case "critical", "any":
	default:
		return fmt.Errorf("invalid fail_on %q (expected critical or any)", c.Lint.FailOn)
	}
	if _, err := report.ParseFormat(c.Lint.Format); err != nil {
		return err
	}
	return nil
}

// =============================================================================
// Logger Setup
// =============================================================================

// SetupLogger creates a logger with the configured level and format.
// Logs go to stderr so the report on stdout stays machine-readable.
func SetupLogger(cfg *Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Log.Format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
