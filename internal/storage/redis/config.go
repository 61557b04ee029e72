package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// Startup ping retries
	ConnectAttempts uint
	ConnectDelay    time.Duration

	// TTL settings for different entity types. Zero means no expiry.
	GuestPlayerTTL time.Duration
	SessionTTL     time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:             "redis://localhost:6379",
		PoolSize:        10,
		MinIdleConns:    2,
		ConnectAttempts: 5,
		ConnectDelay:    200 * time.Millisecond,
		GuestPlayerTTL:  24 * time.Hour,
		SessionTTL:      7 * 24 * time.Hour,
	}
}
