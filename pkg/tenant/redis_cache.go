package tenant

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisCache shares resolved operators across instances through Redis.
// Cache failures degrade to a miss; the provider remains the source of truth.
type redisCache struct {
	client redis.UniversalClient
	prefix string
}

// DefaultRedisKeyPrefix namespaces operator cache entries in a shared Redis.
const DefaultRedisKeyPrefix = "tenant:"

// NewRedisCache creates a Cache backed by the given Redis client.
// An empty prefix falls back to DefaultRedisKeyPrefix.
func NewRedisCache(client redis.UniversalClient, prefix string) Cache {
	if prefix == "" {
		prefix = DefaultRedisKeyPrefix
	}
	return &redisCache{client: client, prefix: prefix}
}

func (c *redisCache) Get(ctx context.Context, key string) (*Tenant, bool) {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		return nil, false
	}

	var t Tenant
	if err := json.Unmarshal(raw, &t); err != nil {
		// A corrupt entry is unusable; drop it so the provider refreshes it.
		c.client.Del(ctx, c.prefix+key)
		return nil, false
	}
	return &t, true
}

func (c *redisCache) Set(ctx context.Context, key string, t *Tenant, ttl time.Duration) {
	raw, err := json.Marshal(t)
	if err != nil {
		return
	}
	c.client.Set(ctx, c.prefix+key, raw, ttl)
}

func (c *redisCache) Delete(ctx context.Context, key string) {
	c.client.Del(ctx, c.prefix+key)
}

// Close is a no-op: the Redis client is shared and owned by the caller.
func (c *redisCache) Close() error {
	return nil
}
