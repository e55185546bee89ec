package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/salaryscope/salaryscope/internal/errors"
)

// Config holds environment-driven defaults, read from SALARYSCOPE_*
// variables. CLI flags override these.
type Config struct {
	DatasetPath string `envconfig:"DATASET"`
	TopN        int    `envconfig:"TOP_N" default:"10"`
	OutputDir   string `envconfig:"OUTPUT_DIR" default:"."`
	NoColor     bool   `envconfig:"NO_COLOR"`
	Debug       bool   `envconfig:"DEBUG"`
}

// Load reads configuration from the environment, optionally seeding it
// from a .env file first. A missing .env file is not an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	} else {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := envconfig.Process("salaryscope", &cfg); err != nil {
		return Config{}, errors.NewInvalidInputError("failed to read configuration from environment", err)
	}
	if cfg.TopN < 1 {
		return Config{}, errors.NewInvalidInputError("SALARYSCOPE_TOP_N must be at least 1", nil)
	}
	return cfg, nil
}
