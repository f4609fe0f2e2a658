package redis

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

// Cache implements usecase.Cache using Redis.
type Cache struct {
	client *redis.Client
	prefix string
	hits   prometheus.Counter
	misses prometheus.Counter
}

// NewCache creates a new Cache. The hit and miss counters may be nil.
func NewCache(client *redis.Client, hits, misses prometheus.Counter) *Cache {
	return &Cache{
		client: client,
		prefix: "cache:",
		hits:   hits,
		misses: misses,
	}
}

// Get retrieves a value by key.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, c.prefix+key).Result()
	switch {
	case err == redis.Nil:
		if c.misses != nil {
			c.misses.Inc()
		}
	case err == nil:
		if c.hits != nil {
			c.hits.Inc()
		}
	}

	return value, err
}

// Set stores a value with TTL.
func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, value, ttl).Err()
}

// SetNX sets a value only if it doesn't exist.
func (c *Cache) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, c.prefix+key, value, ttl).Result()
}

// Delete removes a key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.prefix+key).Err()
}
