// Package geocode wraps reverse geocoding with a session-scoped
// coordinate cache so a trip's handful of waypoints is only looked up
// once per viewing session.
package geocode

import (
	"fmt"
	"sync"
)

// Cache maps coordinate pairs to resolved place names for one viewing
// session. It grows monotonically and is never evicted; failed lookups
// are stored as empty strings so a persistently failing coordinate is
// not retried within the session.
type Cache struct {
	mu    sync.Mutex
	names map[string]string
}

// NewCache returns an empty session cache.
func NewCache() *Cache {
	return &Cache{names: make(map[string]string)}
}

// cacheKey gives exact-match keying at the precision the log source
// stores coordinates with. No proximity matching.
func cacheKey(lat, lon float64) string {
	return fmt.Sprintf("%.6f,%.6f", lat, lon)
}

// Get returns the cached name for a coordinate pair and whether any
// lookup (including a failed one) has been recorded for it.
func (c *Cache) Get(lat, lon float64) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	name, ok := c.names[cacheKey(lat, lon)]
	return name, ok
}

// Put records a lookup result. Concurrent resolution of the same
// coordinate may race here; last write wins, which is fine because
// results are idempotent for a fixed coordinate within a session.
func (c *Cache) Put(lat, lon float64, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names[cacheKey(lat, lon)] = name
}

// Len returns the number of cached coordinates.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.names)
}
