package geocode

import (
	"context"
	"strings"
	"sync"
	"time"

	"sunchart-api/internal/models"
)

// Cache is a bounded, expiring lookup cache in front of another Resolver.
// It caches successful resolutions only; errors always fall through to the
// wrapped resolver on the next call. Safe for concurrent use.
type Cache struct {
	mu         sync.Mutex
	resolver   Resolver
	ttl        time.Duration
	maxEntries int
	entries    map[string]cacheEntry
	now        func() time.Time
}

type cacheEntry struct {
	location models.Location
	storedAt time.Time
}

// NewCache wraps resolver with a cache holding at most maxEntries
// resolutions for up to ttl each.
func NewCache(resolver Resolver, maxEntries int, ttl time.Duration) *Cache {
	if maxEntries <= 0 {
		maxEntries = 128
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Cache{
		resolver:   resolver,
		ttl:        ttl,
		maxEntries: maxEntries,
		entries:    make(map[string]cacheEntry, maxEntries),
		now:        time.Now,
	}
}

// Resolve returns a cached Location when a fresh entry exists for the
// normalized name, and consults the wrapped resolver otherwise.
func (c *Cache) Resolve(ctx context.Context, name string) (models.Location, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	c.mu.Lock()
	if entry, ok := c.entries[key]; ok {
		if c.now().Sub(entry.storedAt) <= c.ttl {
			c.mu.Unlock()
			return entry.location, nil
		}
		delete(c.entries, key)
	}
	c.mu.Unlock()

	location, err := c.resolver.Resolve(ctx, name)
	if err != nil {
		return models.Location{}, err
	}

	c.mu.Lock()
	if len(c.entries) >= c.maxEntries {
		c.evictOldestLocked()
	}
	c.entries[key] = cacheEntry{location: location, storedAt: c.now()}
	c.mu.Unlock()

	return location, nil
}

func (c *Cache) evictOldestLocked() {
	var oldestKey string
	var oldestAt time.Time
	first := true
	for key, entry := range c.entries {
		if first || entry.storedAt.Before(oldestAt) {
			oldestKey, oldestAt = key, entry.storedAt
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}
