package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server holds the environment-sourced server settings. Operator
// knobs that change per invocation (ports, log level, backend) stay
// on flags in cmd/server.
type Server struct {
	DatabaseURL   string        `env:"DATABASE_URL"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	SaveKey       string        `env:"SAVE_KEY" envDefault:"default"`
	SaveTTL       time.Duration `env:"SAVE_TTL" envDefault:"0"`
}

// LoadServer parses the server configuration from the environment.
func LoadServer() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
