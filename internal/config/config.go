package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the server configuration, parsed from the environment
type Config struct {
	// Host is the address to bind the HTTP server to
	Host string `env:"HOST" envDefault:""`
	// Port is the HTTP server port
	Port int `env:"PORT" envDefault:"8080"`

	// StorageType selects the storage backend ("memory" or "redis")
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	// RedisURL is the Redis connection URL, used when StorageType is "redis"
	RedisURL string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`

	// RoomTTL is how long a room may sit idle before it is reclaimed
	RoomTTL time.Duration `env:"ROOM_TTL" envDefault:"2h"`
	// SweepInterval is how often the idle sweep runs
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"5m"`

	// LogLevel sets the minimum log level (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the configuration from the environment
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config from environment: %w", err)
	}
	return cfg, nil
}
