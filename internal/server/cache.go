package server

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mj1618/a11y-reporter/internal/platform/replay"
)

// cacheEntry holds a parsed recording with the file state it came from.
type cacheEntry struct {
	rec       *replay.Recording
	modTime   time.Time
	size      int64
	timestamp time.Time
}

// RecordingCache provides a TTL-based cache of parsed recordings. An entry is
// also dropped when the file's size or modification time changes.
type RecordingCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	load    func(string) (*replay.Recording, error)
}

// NewRecordingCache creates a new cache. A ttl of 0 disables caching.
func NewRecordingCache(ttl time.Duration) *RecordingCache {
	return &RecordingCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		load:    replay.Load,
	}
}

// Load returns a cached recording if it is fresh, otherwise parses the file.
// Returned recordings are shared and must not be modified.
func (c *RecordingCache) Load(path string) (*replay.Recording, error) {
	if c.ttl == 0 {
		return c.load(path)
	}

	key, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}
	fi, err := os.Stat(key)
	if err != nil {
		return nil, fmt.Errorf("stat recording: %w", err)
	}

	c.mu.Lock()
	if entry, ok := c.entries[key]; ok && time.Since(entry.timestamp) < c.ttl &&
		entry.modTime.Equal(fi.ModTime()) && entry.size == fi.Size() {
		rec := entry.rec
		c.mu.Unlock()
		return rec, nil
	}
	c.mu.Unlock()

	rec, err := c.load(key)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{rec: rec, modTime: fi.ModTime(), size: fi.Size(), timestamp: time.Now()}
	c.mu.Unlock()

	return rec, nil
}

// Invalidate removes the entry for path.
func (c *RecordingCache) Invalidate(path string) {
	key, err := filepath.Abs(path)
	if err != nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}
