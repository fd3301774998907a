// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Supported user store backends.
const (
	UserStoreMemory   = "memory"
	UserStorePostgres = "postgres"
)

// Configuration errors.
var (
	ErrUnknownUserStore    = errors.New("unknown user store")
	ErrDatabaseURLRequired = errors.New("DATABASE_URL is required for the postgres user store")
)

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	// Application settings
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort int    `env:"APP_PORT" envDefault:"8080"`

	// User store backend: "memory" (seeded fixtures) or "postgres".
	UserStore string `env:"USER_STORE" envDefault:"memory"`

	// Database (PostgreSQL), only read when UserStore is "postgres".
	DatabaseURL string `env:"DATABASE_URL"`

	// Cache (Redis). Empty disables the user cache.
	RedisURL             string        `env:"REDIS_URL"`
	UserCacheTTL         time.Duration `env:"USER_CACHE_TTL" envDefault:"10m"`
	UserNegativeCacheTTL time.Duration `env:"USER_NEGATIVE_CACHE_TTL" envDefault:"1m"`

	// Summary returned by the analytics stub for every user.
	AnalyticsPlaceholder string `env:"ANALYTICS_PLACEHOLDER" envDefault:"Sample analytics data"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// CacheEnabled reports whether a Redis URL was configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}

// Validate checks cross-field constraints that struct tags cannot express.
func (c *Config) Validate() error {
	switch c.UserStore {
	case UserStoreMemory:
	case UserStorePostgres:
		if c.DatabaseURL == "" {
			return ErrDatabaseURLRequired
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownUserStore, c.UserStore)
	}
	return nil
}

// Load parses environment variables and returns a validated Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
