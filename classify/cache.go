package classify

import (
	"sync"

	"github.com/alorle/iptv-catalog/metrics"
)

// Cache memoizes Classify results so the list UI doesn't re-parse every
// visible row on every redraw. Keys are (raw name, timezone); Classify is
// referentially transparent over that pair, which is what makes this safe.
//
// The cache is owned by the caller and must be explicitly invalidated on
// catalog refresh. It is safe for concurrent use.
type Cache struct {
	mu         sync.RWMutex
	classifier *Classifier
	entries    map[string]ParsedContent
}

// NewCache creates an empty cache over the given classifier.
func NewCache(c *Classifier) *Cache {
	return &Cache{
		classifier: c,
		entries:    make(map[string]ParsedContent),
	}
}

// Get returns the cached classification for raw, computing and storing it
// on first access.
func (c *Cache) Get(raw, timezone string) ParsedContent {
	key := raw + "\x00" + timezone

	c.mu.RLock()
	parsed, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		metrics.RecordCacheHit()
		return parsed
	}

	metrics.RecordCacheMiss()
	parsed = c.classifier.Classify(raw)

	c.mu.Lock()
	c.entries[key] = parsed
	c.mu.Unlock()

	return parsed
}

// InvalidateAll drops every cached entry. Call on catalog refresh so
// re-fetched names are parsed fresh.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]ParsedContent)
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
