package app

import (
	"fmt"
	"strings"

	"github.com/vk/tripplanner/internal/summary"
)

const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SettingsPath string // optional HCL settings file
	EnvFile      string // optional dotenv file

	LogFormat string
	LogLevel  string
	Output    summary.Format
	Plan      bool // append the budget breakdown, itinerary and tips
}

// NewConfig fills in defaults and validates every field.
func NewConfig(cfg Config) (*Config, error) {
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	if cfg.Output == "" {
		cfg.Output = summary.FormatText
	}
	output, err := summary.ParseFormat(string(cfg.Output))
	if err != nil {
		return nil, err
	}
	cfg.Output = output

	if cfg.Plan && cfg.Output != summary.FormatText {
		return nil, fmt.Errorf("plan is only available with the text output, not %q", cfg.Output)
	}

	return &cfg, nil
}
