package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// InMemoryCache implements CacheService using go-cache
type InMemoryCache struct {
	cache   *gocache.Cache
	enabled bool
}

// NewInMemoryCache creates a new in-memory cache instance
func NewInMemoryCache(config CacheConfig) *InMemoryCache {
	return &InMemoryCache{
		cache:   gocache.New(config.DefaultTTL, config.CleanupInterval),
		enabled: config.Enabled,
	}
}

// Get retrieves a value from cache by key. A disabled cache always misses.
func (c *InMemoryCache) Get(key string) ([]byte, error) {
	if !c.enabled {
		return nil, ErrKeyNotFound
	}

	value, found := c.cache.Get(key)
	if !found {
		return nil, ErrKeyNotFound
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil, ErrInvalidValue
	}

	return bytes, nil
}

// Set stores a value in cache with the specified TTL
func (c *InMemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	if !c.enabled {
		return nil
	}
	c.cache.Set(key, value, ttl)
	return nil
}

// Delete removes a key from cache
func (c *InMemoryCache) Delete(key string) error {
	c.cache.Delete(key)
	return nil
}

// Clear removes all keys from cache
func (c *InMemoryCache) Clear() error {
	c.cache.Flush()
	return nil
}

// ItemCount returns the number of items in the cache
func (c *InMemoryCache) ItemCount() int {
	return c.cache.ItemCount()
}
