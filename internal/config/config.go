// Package config loads runtime configuration from the environment.
package config

import (
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the environment-driven settings. Everything has a working
// default; a .env file next to the binary is honored when present.
type Config struct {
	// DBPath is the SQLite database location.
	DBPath string `env:"ROLLBOOK_DB" envDefault:"./data/rollbook.db"`

	// LogLevel is the slog level name: debug, info, warn or error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// New loads configuration from .env (if any) and the process environment.
// Parse failures keep the defaults; a local tool should start regardless.
func New() *Config {
	if err := godotenv.Load(".env"); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse environment variables", "error", err)
	}
	return &cfg
}
