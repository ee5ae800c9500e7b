// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel   string `env:"BATTLESHIP_LOG_LEVEL" envDefault:"info"`
	Seed       uint64 `env:"BATTLESHIP_SEED" envDefault:"0"`
	Audit      string `env:"BATTLESHIP_AUDIT" envDefault:"merkle"`
	KeysDir    string `env:"BATTLESHIP_KEYS_DIR" envDefault:"./keys"`
	PlayerName string `env:"BATTLESHIP_PLAYER_NAME" envDefault:"Player"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads envFiles (default .env) if present, then the environment.
// Variables already set in the environment win over file values.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
