package app

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger constructs a zerolog.Logger writing to out. Production logs are
// JSON at info level; development logs are human-readable at debug level.
// Config.LogLevel overrides either.
func NewLogger(cfg Config, out io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg.Env == "development" {
		level = zerolog.DebugLevel
	}
	if cfg.LogLevel != "" {
		if l, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
			level = l
		}
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()

	if cfg.Env == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	}
	return logger
}
