// Package cache provides a keyed, disk-backed cache over gache for metadata responses.
package cache

import (
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/reelroll-cli/reelroll/filesystem"
	"github.com/samber/mo"
)

type cacheData[K comparable, T any] struct {
	Entries map[K]T `json:"entries"`
}

// Cache stores values of type T under keys of type K in a single JSON file.
// The whole file expires at once after its lifetime.
type Cache[K comparable, T any] struct {
	mu       sync.Mutex
	internal *gache.Cache[*cacheData[K, T]]
}

// New creates a cache persisted at path. A zero lifetime never expires.
func New[K comparable, T any](path string, lifetime time.Duration) *Cache[K, T] {
	return &Cache[K, T]{
		internal: gache.New[*cacheData[K, T]](&gache.Options{
			Path:       path,
			Lifetime:   lifetime,
			FileSystem: filesystem.Gache{},
		}),
	}
}

// Get retrieves the value cached under key.
func (c *Cache[K, T]) Get(key K) mo.Option[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[T]()
	}

	if value, ok := data.Entries[key]; ok {
		return mo.Some(value)
	}

	return mo.None[T]()
}

// Set stores value under key.
func (c *Cache[K, T]) Set(key K, value T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	if expired || data == nil || data.Entries == nil {
		data = &cacheData[K, T]{Entries: make(map[K]T)}
	}

	data.Entries[key] = value
	return c.internal.Set(data)
}

// Delete removes key from the cache.
func (c *Cache[K, T]) Delete(key K) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	if expired || data == nil {
		return nil
	}

	delete(data.Entries, key)
	return c.internal.Set(data)
}
