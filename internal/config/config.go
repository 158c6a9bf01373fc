// Package config loads server settings from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds everything cmd/sudoku-web needs. Flags may still override
// Addr and LogLevel at startup.
type Config struct {
	Addr     string `env:"SUDOKU_ADDR" envDefault:":8080"`
	LogLevel string `env:"SUDOKU_LOG_LEVEL" envDefault:"info"`
	// GenSeed pins the generator's random seed; 0 uses the clock.
	GenSeed int64 `env:"SUDOKU_GEN_SEED" envDefault:"0"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
