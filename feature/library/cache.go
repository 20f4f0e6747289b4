package library

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultCacheTTL bounds how stale a served catalog or media listing can be.
const DefaultCacheTTL = 5 * time.Minute

type cacheEntry struct {
	value   any
	fetched time.Time
}

// ttlCache is a small read-through cache with singleflight protection.
// Concurrent misses for the same key share one fetch; entries expire after
// the TTL and are refetched on the next read.
type ttlCache struct {
	ttl   time.Duration
	group singleflight.Group

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

func newTTLCache(ttl time.Duration) *ttlCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ttlCache{ttl: ttl, entries: make(map[string]cacheEntry)}
}

// get returns the cached value for key, calling fetch on a miss or an
// expired entry. Fetch errors are not cached.
func (c *ttlCache) get(key string, fetch func() (any, error)) (any, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && time.Since(entry.fetched) < c.ttl {
		return entry.value, nil
	}

	value, err, _ := c.group.Do(key, func() (any, error) {
		// Another caller may have refreshed the entry while this one
		// waited on the flight group.
		c.mu.RLock()
		entry, ok := c.entries[key]
		c.mu.RUnlock()
		if ok && time.Since(entry.fetched) < c.ttl {
			return entry.value, nil
		}

		fresh, err := fetch()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = cacheEntry{value: fresh, fetched: time.Now()}
		c.mu.Unlock()
		return fresh, nil
	})
	return value, err
}

// invalidate drops all cached entries.
func (c *ttlCache) invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}
