package memcache

import (
	"sync"
	"time"

	"gotrip/internal/models/domain_models"
)

// PlacesCache memoizes catalog fetch results per request shape
// (rounded center + sorted preferences). Bounded by capacity and TTL so a
// long-running process cannot grow it without limit. Writes are idempotent,
// so concurrent misses only risk duplicate fetch work.
type PlacesCache struct {
	mu       sync.RWMutex
	data     map[string]entry
	capacity int
	ttl      time.Duration
}

type entry struct {
	places    []domain_models.Place
	expiresAt time.Time
}

func NewPlacesCache(capacity int, ttl time.Duration) *PlacesCache {
	return &PlacesCache{
		data:     make(map[string]entry, capacity),
		capacity: capacity,
		ttl:      ttl,
	}
}

func (c *PlacesCache) Get(key string) ([]domain_models.Place, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.data[key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.places, true
}

func (c *PlacesCache) Set(key string, places []domain_models.Place) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.data[key]; !exists && len(c.data) >= c.capacity {
		c.evictOldestLocked()
	}
	c.data[key] = entry{
		places:    places,
		expiresAt: time.Now().Add(c.ttl),
	}
}

func (c *PlacesCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// evictOldestLocked drops the entry closest to expiry; expired entries go
// first. Caller holds the write lock.
func (c *PlacesCache) evictOldestLocked() {
	var oldestKey string
	var oldestAt time.Time
	first := true
	for k, e := range c.data {
		if first || e.expiresAt.Before(oldestAt) {
			oldestKey = k
			oldestAt = e.expiresAt
			first = false
		}
	}
	if !first {
		delete(c.data, oldestKey)
	}
}
