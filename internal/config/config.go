package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all runtime configuration, loaded from the environment.
type Config struct {
	Port        string `env:"PORT" env-default:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`

	DefaultPageSize int `env:"DEFAULT_PAGE_SIZE" env-default:"10"`
	MaxPageSize     int `env:"MAX_PAGE_SIZE" env-default:"50"`

	// MaxProjects caps the total number of projects. 0 disables the quota.
	MaxProjects int `env:"MAX_PROJECTS" env-default:"0"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL not set")
	}
	if cfg.DefaultPageSize < 1 || cfg.MaxPageSize < cfg.DefaultPageSize {
		return Config{}, fmt.Errorf("invalid page size bounds: default=%d max=%d", cfg.DefaultPageSize, cfg.MaxPageSize)
	}
	return cfg, nil
}
