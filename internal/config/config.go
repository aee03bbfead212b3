package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds the server configuration, parsed from environment variables.
type Config struct {
	Port              string        `env:"PORT"                envDefault:"8080"`
	MongoURI          string        `env:"MONGO_URI"           envDefault:"mongodb://localhost:27017"`
	MongoDatabase     string        `env:"MONGO_DATABASE"      envDefault:"buddylink"`
	RedisURL          string        `env:"REDIS_URL"`
	SessionTTL        time.Duration `env:"SESSION_TTL"         envDefault:"24h"`
	SessionCookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"buddylink_session"`
}

// Load creates a Config instance from environment variables.
func Load(logger *zerolog.Logger) *Config {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse environment variables")
	}

	if err := cfg.validate(); err != nil {
		logger.Fatal().Err(err).Msg("failed to validate server configuration")
	}

	return &cfg
}

// validate checks if the server configuration is valid.
func (c *Config) validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("missing MONGO_URI environment variable")
	}
	if c.MongoDatabase == "" {
		return fmt.Errorf("missing MONGO_DATABASE environment variable")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}

	return nil
}
