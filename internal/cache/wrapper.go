package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"portfolio-backend/internal/logger"
)

// CacheWrapper provides a higher-level caching abstraction with automatic
// serialization, logging and error handling
type CacheWrapper struct {
	cache      CacheService
	defaultTTL time.Duration
}

// NewCacheWrapper creates a new cache wrapper
func NewCacheWrapper(cache CacheService, defaultTTL time.Duration) *CacheWrapper {
	return &CacheWrapper{
		cache:      cache,
		defaultTTL: defaultTTL,
	}
}

// GetOrSet retrieves from cache or executes the fetcher function and caches
// its JSON-marshaled result.
func (w *CacheWrapper) GetOrSet(key string, ttl time.Duration, fetcher func() (interface{}, error)) ([]byte, error) {
	if ttl <= 0 {
		ttl = w.defaultTTL
	}

	data, err := w.cache.Get(key)
	if err == nil {
		logger.New().WithField("cache_key", key).Debug("Cache hit")
		return data, nil
	}

	logger.New().WithField("cache_key", key).Debug("Cache miss")

	result, err := fetcher()
	if err != nil {
		return nil, fmt.Errorf("fetcher failed: %w", err)
	}

	data, err = json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := w.cache.Set(key, data, ttl); err != nil {
		logger.New().WithField("cache_key", key).WithError(err).Warn("Failed to cache response")
	}

	return data, nil
}

// Invalidate removes a key after a write so the next list is fresh.
func (w *CacheWrapper) Invalidate(key string) {
	if err := w.cache.Delete(key); err != nil {
		logger.New().WithField("cache_key", key).WithError(err).Warn("Failed to invalidate cache key")
	}
}
