// internal/config/config.go
//
// Environment-driven configuration for the CLI.
// A `.env` file is honored in development (godotenv); values are then
// parsed into the Config struct by tag.

package config

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries every tunable the binary reads from the environment.
type Config struct {
	// LogLevel is a zerolog level name ("debug", "info", ...).
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// MaxTurns bounds game length.
	MaxTurns int `env:"MASTERMIND_MAX_TURNS" envDefault:"12"`

	// TurnDelay is the cosmetic pause between computer guesses.
	// Set to 0 to disable.
	TurnDelay time.Duration `env:"MASTERMIND_TURN_DELAY" envDefault:"600ms"`

	// Seed fixes the random source; 0 means time-seeded.
	Seed int64 `env:"MASTERMIND_SEED" envDefault:"0"`
}

// Load reads `.env` if present, then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Rand builds the game's random source from the configured seed.
func (c Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
