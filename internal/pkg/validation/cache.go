package validation

import (
	"reflect"
	"sync"
	"time"
)

// DefaultCacheTTL is how long a per-field result stays valid for an
// unchanged value.
const DefaultCacheTTL = 5 * time.Minute

type cacheEntry struct {
	value  interface{}
	result *Error
	at     time.Time
}

// Cache memoizes per-field validation results so repeated checks of an
// unchanged value skip recomputation. Each validator instance owns its
// cache; there is no shared global state.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

// NewCache creates a cache with the given TTL (DefaultCacheTTL if zero)
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Lookup returns the cached result for (field, value) if the value is
// unchanged and the entry is fresh. The second return reports a hit; the
// cached result itself may be nil (a previously valid value).
func (c *Cache) Lookup(field string, value interface{}) (*Error, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[field]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.at) > c.ttl {
		return nil, false
	}
	if !reflect.DeepEqual(entry.value, value) {
		return nil, false
	}
	return entry.result, true
}

// Store records the result for (field, value)
func (c *Cache) Store(field string, value interface{}, result *Error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[field] = cacheEntry{value: value, result: result, at: c.now()}
}

// Invalidate drops the cached entry for one field
func (c *Cache) Invalidate(field string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, field)
}

// Clear drops all cached entries
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
