package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// RoomTTL is a safety-net expiry on stored rooms. The idle sweep is the
	// authoritative reclamation path; this only catches rooms orphaned by a
	// process crash.
	RoomTTL time.Duration

	// PlayerIndexTTL bounds the player -> room index entries
	PlayerIndexTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:            "redis://localhost:6379",
		PoolSize:       10,
		MinIdleConns:   2,
		RoomTTL:        24 * time.Hour,
		PlayerIndexTTL: 24 * time.Hour,
	}
}
