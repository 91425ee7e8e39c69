package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis wraps the shared client handle for the configured Redis instance.
// Nothing caches through it yet; it exists to validate REDIS_URL, expose
// the handle to future users, and answer reachability probes.
type Redis struct {
	client redis.UniversalClient
}

// New builds the client from a redis:// URL. Dialing is lazy: a malformed
// URL fails here, an unreachable server surfaces on the first command.
func New(redisURL string) (*Redis, error) {
	if redisURL == "" {
		return nil, fmt.Errorf("redis URL must be provided")
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	return &Redis{client: redis.NewClient(opts)}, nil
}

// Client exposes the underlying handle.
func (r *Redis) Client() redis.UniversalClient {
	return r.client
}

// Ping verifies connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}
