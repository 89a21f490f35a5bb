package config

// Redis backs the response cache and the rate limiter. Neither feature
// is load-bearing, so a connection failure at startup returns nil and
// callers disable themselves instead of crashing the server.

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a Redis client from RedisConfig and verifies it
// with a short ping. The returned client is nil when the server cannot
// be reached.
func NewRedisClient(cfg RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
