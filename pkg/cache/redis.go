package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores entries in Redis. It is the backend for server
// deployments where multiple viewer instances share one artifact cache.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to Redis at addr (host:port) and verifies the
// connection with a ping.
func NewRedisCache(ctx context.Context, addr string) (Cache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis at %s: %w", addr, err)
	}
	return &RedisCache{client: client}, nil
}

// Get retrieves a value. Expiration is handled by Redis itself.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, Retryable(fmt.Errorf("redis get: %w", err))
	}
	return data, true, nil
}

// Set stores a value with the given ttl. A ttl of zero stores it without
// expiration; a negative ttl drops the key, since Redis rejects negative
// expirations.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if ttl < 0 {
		return c.Delete(ctx, key)
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return Retryable(fmt.Errorf("redis set: %w", err))
	}
	return nil
}

// Delete removes a value. Deleting an absent key is not an error.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return Retryable(fmt.Errorf("redis del: %w", err))
	}
	return nil
}

// Close closes the underlying client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ Cache = (*RedisCache)(nil)
