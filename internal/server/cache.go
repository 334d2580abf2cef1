package server

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mj1618/designer-cli/internal/designer"
	"github.com/mj1618/designer-cli/internal/model"
)

// cacheKey identifies one conversion of one file.
type cacheKey struct {
	Path       string
	TypePrefix string
}

// cacheEntry holds a converted forest with the file state it was built from.
type cacheEntry struct {
	nodes     []*model.Node
	modTime   time.Time
	size      int64
	timestamp time.Time
}

// ResultCache provides a TTL-based cache of file conversions. An entry is
// also discarded when the file's modification time or size changes.
type ResultCache struct {
	mu      sync.Mutex
	entries map[cacheKey]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewResultCache creates a new cache. A ttl of 0 disables caching.
func NewResultCache(ttl time.Duration) *ResultCache {
	return &ResultCache{
		entries: make(map[cacheKey]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// ConvertFile returns the cached forest for path if still fresh, otherwise
// reads and converts the file. Cached forests are shared; callers must not
// modify them.
func (c *ResultCache) ConvertFile(path string, opts designer.Options) ([]*model.Node, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	key := cacheKey{Path: path, TypePrefix: opts.TypePrefix}

	if c.ttl > 0 {
		c.mu.Lock()
		entry, ok := c.entries[key]
		c.mu.Unlock()
		if ok && c.now().Sub(entry.timestamp) < c.ttl &&
			entry.modTime.Equal(info.ModTime()) && entry.size == info.Size() {
			return entry.nodes, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	nodes := designer.ParseWithOptions(string(data), path, opts)

	if c.ttl > 0 {
		c.mu.Lock()
		c.entries[key] = cacheEntry{
			nodes:     nodes,
			modTime:   info.ModTime(),
			size:      info.Size(),
			timestamp: c.now(),
		}
		c.mu.Unlock()
	}

	return nodes, nil
}

// Invalidate removes all cache entries for path.
func (c *ResultCache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k.Path == path {
			delete(c.entries, k)
		}
	}
}

// InvalidateAll clears the entire cache and returns the number of entries
// dropped.
func (c *ResultCache) InvalidateAll() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.entries)
	c.entries = make(map[cacheKey]cacheEntry)
	return n
}

// Len returns the number of cached entries.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
