package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// New loads a .env file when present, then reads configuration from
// environment variables and unmarshals them into a struct of type T.
func New[T any]() (T, error) {
	var cfg T

	// Missing .env is fine, environment variables take over.
	_ = godotenv.Load()

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}
