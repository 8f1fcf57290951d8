package app

import (
	"io"
	"log/slog"
)

// App encapsulates the session's streams, logger and configuration.
type App struct {
	in     io.Reader
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp builds an App that reads answers from in, writes prompts and the
// summary to outW, and logs to logW.
func NewApp(in io.Reader, outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	return &App{
		in:     in,
		outW:   outW,
		logger: logger,
		config: cfg,
	}
}

// Config returns the validated configuration. This is primarily for testing.
func (a *App) Config() *Config {
	return a.config
}
