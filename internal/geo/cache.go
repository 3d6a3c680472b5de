package geo

import (
	"strings"
	"sync"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
)

// MatchStrategy selects how LocationCache.Get compares a name to cache keys.
type MatchStrategy int

const (
	// MatchSubstring matches when the key is contained in the name or the name
	// in the key. "New York, NY" hits "new york", but so does "London, Ontario"
	// hit "london" (UK). Recall is preferred over precision here.
	MatchSubstring MatchStrategy = iota
	// MatchExact matches only identical normalized strings.
	MatchExact
)

// ParseMatchStrategy maps "exact" to MatchExact and anything else to
// MatchSubstring.
func ParseMatchStrategy(s string) MatchStrategy {
	if strings.EqualFold(strings.TrimSpace(s), "exact") {
		return MatchExact
	}
	return MatchSubstring
}

func (m MatchStrategy) String() string {
	if m == MatchExact {
		return "exact"
	}
	return "substring"
}

type cacheEntry struct {
	coord domain.Coordinate
	seed  bool
}

// LocationCache maps normalized location names to coordinates. Entries are
// kept in insertion order and the first matching entry wins. It is safe for
// concurrent use.
type LocationCache struct {
	mu         sync.RWMutex
	keys       []string
	entries    map[string]cacheEntry
	seeds      []Hub
	match      MatchStrategy
	maxEntries int
	dynamic    int
}

// CacheOption configures a LocationCache.
type CacheOption func(*LocationCache)

// WithMatchStrategy sets the key matching strategy. Default: MatchSubstring.
func WithMatchStrategy(m MatchStrategy) CacheOption {
	return func(c *LocationCache) { c.match = m }
}

// WithMaxEntries bounds the number of non-seed entries. When the bound is
// reached the oldest non-seed entry is evicted. Zero means unbounded.
func WithMaxEntries(n int) CacheOption {
	return func(c *LocationCache) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

// NewLocationCache creates a cache seeded with the given hubs. Pass
// DefaultHubs() for the built-in table or nil for an empty cache.
func NewLocationCache(seed []Hub, opts ...CacheOption) *LocationCache {
	c := &LocationCache{seeds: seed}
	for _, o := range opts {
		o(c)
	}
	c.load()
	return c
}

func (c *LocationCache) load() {
	c.keys = make([]string, 0, len(c.seeds))
	c.entries = make(map[string]cacheEntry, len(c.seeds))
	c.dynamic = 0
	for _, h := range c.seeds {
		key := normalize(h.Name)
		if key == "" || !h.Coordinate.Valid() {
			continue
		}
		if _, ok := c.entries[key]; !ok {
			c.keys = append(c.keys, key)
		}
		c.entries[key] = cacheEntry{coord: h.Coordinate, seed: true}
	}
}

// Get returns the coordinate of the first entry matching name.
func (c *LocationCache) Get(name string) (domain.Coordinate, bool) {
	norm := normalize(name)
	if norm == "" {
		return domain.Coordinate{}, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.match == MatchExact {
		e, ok := c.entries[norm]
		if !ok || !e.coord.Valid() {
			return domain.Coordinate{}, false
		}
		return e.coord, true
	}

	for _, key := range c.keys {
		if strings.Contains(norm, key) || strings.Contains(key, norm) {
			e := c.entries[key]
			if !e.coord.Valid() {
				continue
			}
			return e.coord, true
		}
	}
	return domain.Coordinate{}, false
}

// Put stores coord under the normalized name. It reports false and leaves the
// cache untouched when the name is blank or the coordinate is invalid.
// Overwriting an existing key keeps its position.
func (c *LocationCache) Put(name string, coord domain.Coordinate) bool {
	key := normalize(name)
	if key == "" || !IsValidCoordinate(coord) {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.entries[key] = cacheEntry{coord: coord, seed: e.seed}
		return true
	}

	if c.maxEntries > 0 && c.dynamic >= c.maxEntries {
		c.evictOldestLocked()
	}
	c.keys = append(c.keys, key)
	c.entries[key] = cacheEntry{coord: coord}
	c.dynamic++
	return true
}

func (c *LocationCache) evictOldestLocked() {
	for i, key := range c.keys {
		if c.entries[key].seed {
			continue
		}
		delete(c.entries, key)
		c.keys = append(c.keys[:i], c.keys[i+1:]...)
		c.dynamic--
		return
	}
}

// Len returns the number of entries, seeds included.
func (c *LocationCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.keys)
}

// Reset drops every learned entry and restores the seed table.
func (c *LocationCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()
}

// Strategy returns the configured match strategy.
func (c *LocationCache) Strategy() MatchStrategy {
	return c.match
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
