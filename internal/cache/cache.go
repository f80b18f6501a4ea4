package cache

import (
	"errors"
	"time"
)

// Common cache errors
var (
	ErrKeyNotFound  = errors.New("key not found in cache")
	ErrInvalidValue = errors.New("invalid cached value type")
)

// CacheService defines the interface for cache operations.
// This interface allows swapping the in-memory implementation for Redis
// without major refactoring.
type CacheService interface {
	// Get retrieves a value from cache by key
	Get(key string) ([]byte, error)
	// Set stores a value in cache with the given TTL
	Set(key string, value []byte, ttl time.Duration) error
	// Delete removes a key from cache
	Delete(key string) error
	// Clear removes all items from cache
	Clear() error
}

// CacheConfig holds configuration for cache implementations
type CacheConfig struct {
	// DefaultTTL is the default expiration time for cached items
	DefaultTTL time.Duration
	// CleanupInterval is how often expired items are cleaned up
	CleanupInterval time.Duration
	// Enabled determines if caching is active
	Enabled bool
}

// DefaultCacheConfig returns sensible cache defaults
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		DefaultTTL:      5 * time.Minute,
		CleanupInterval: 10 * time.Minute,
		Enabled:         true,
	}
}

// TTLConfig defines cache TTL durations for the list endpoints
type TTLConfig struct {
	MessageList  time.Duration
	ProjectList  time.Duration
	BlogPostList time.Duration
	Default      time.Duration
}

// DefaultTTLConfig returns default TTL configuration.
// Lists are invalidated explicitly on create, so the TTL is only a
// backstop against drift from out-of-band writes.
func DefaultTTLConfig() TTLConfig {
	return TTLConfig{
		MessageList:  1 * time.Minute,
		ProjectList:  5 * time.Minute,
		BlogPostList: 5 * time.Minute,
		Default:      5 * time.Minute,
	}
}

// Cache key prefixes for the list endpoints
const (
	KeyMessageList  = "messages:list"
	KeyProjectList  = "projects:list"
	KeyBlogPostList = "blog_posts:list"
)
