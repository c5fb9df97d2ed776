package tenant

import (
	"context"
	"sync"
	"time"
)

// Cache is the interface for operator caching implementations.
type Cache interface {
	// Get retrieves an operator from cache by key.
	Get(ctx context.Context, key string) (*Tenant, bool)

	// Set stores an operator in cache with the given TTL.
	Set(ctx context.Context, key string, t *Tenant, ttl time.Duration)

	// Delete removes an operator from cache.
	Delete(ctx context.Context, key string)

	// Close releases any resources held by the cache.
	Close() error
}

// inMemoryCache is the default in-process cache with TTL expiry.
type inMemoryCache struct {
	mu     sync.RWMutex
	items  map[string]cacheItem
	stop   chan struct{}
	done   chan struct{}
	closed bool
}

type cacheItem struct {
	tenant    *Tenant
	expiresAt time.Time
}

// NewInMemoryCache creates an in-memory cache with periodic cleanup of
// expired entries.
func NewInMemoryCache() Cache {
	c := &inMemoryCache{
		items: make(map[string]cacheItem),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	go c.cleanup()
	return c
}

func (c *inMemoryCache) Get(_ context.Context, key string) (*Tenant, bool) {
	c.mu.RLock()
	item, exists := c.items[key]
	c.mu.RUnlock()

	if !exists {
		return nil, false
	}
	if time.Now().After(item.expiresAt) {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return nil, false
	}
	return item.tenant, true
}

func (c *inMemoryCache) Set(_ context.Context, key string, t *Tenant, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheItem{tenant: t, expiresAt: time.Now().Add(ttl)}
}

func (c *inMemoryCache) Delete(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

func (c *inMemoryCache) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	defer close(c.done)

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for key, item := range c.items {
				if now.After(item.expiresAt) {
					delete(c.items, key)
				}
			}
			c.mu.Unlock()
		case <-c.stop:
			return
		}
	}
}

// Close stops the cleanup goroutine and waits for it to finish.
func (c *inMemoryCache) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	close(c.stop)
	<-c.done
	return nil
}

// noOpCache disables caching entirely. Useful in tests and behind an
// external cache layer.
type noOpCache struct{}

// NewNoOpCache creates a cache that doesn't cache.
func NewNoOpCache() Cache {
	return noOpCache{}
}

func (noOpCache) Get(context.Context, string) (*Tenant, bool) { return nil, false }

func (noOpCache) Set(context.Context, string, *Tenant, time.Duration) {}

func (noOpCache) Delete(context.Context, string) {}

func (noOpCache) Close() error { return nil }
