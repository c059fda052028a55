package app

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Env            string `env:"SEMENTINHA_ENV" envDefault:"production"` // "development" enables console logs
	LogLevel       string `env:"SEMENTINHA_LOG_LEVEL"`                   // overrides the level chosen by Env
	ExportDir      string `env:"SEMENTINHA_EXPORT_DIR" envDefault:"."`
	SealPassphrase string `env:"SEMENTINHA_SEAL_PASSPHRASE"` // optional; seals every export
}

// LoadConfig reads optional dotenv files (".env" when none are given) and then
// parses Config from the environment. Variables already set in the
// environment win over dotenv values.
func LoadConfig(dotenv ...string) (Config, error) {
	if len(dotenv) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	} else if err := godotenv.Load(dotenv...); err != nil {
		return Config{}, fmt.Errorf("load %v: %w", dotenv, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that cannot be expressed as struct tags.
func (c Config) Validate() error {
	if c.LogLevel != "" {
		if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("SEMENTINHA_LOG_LEVEL: %w", err)
		}
	}
	if c.ExportDir == "" {
		return fmt.Errorf("SEMENTINHA_EXPORT_DIR must not be empty")
	}
	return nil
}
