// Package cache provides the TTL-bounded evaluation result cache and
// the deterministic fingerprint function used for its keys.
//
// The cache is a single in-process instance shared by all in-flight
// evaluations. Callers follow check-then-compute-then-set; two requests
// racing on the same fingerprint may both compute, which is harmless
// duplicate work, never a correctness problem. Expired entries are
// treated as absent and evicted lazily on read; a background sweep
// bounds memory between reads.
package cache

import (
	"sync"
	"time"
)

// entry is one cached evaluation result with its expiry bookkeeping.
type entry struct {
	value          interface{}
	createdAt      time.Time
	expiresAt      time.Time
	lastAccessedAt time.Time
}

// ResultCache is a thread-safe key-value cache with per-entry TTLs and
// LRU eviction at capacity.
type ResultCache struct {
	// entries maps fingerprints to cached results
	entries map[string]*entry

	// maxEntries bounds the cache size (0 = unlimited)
	maxEntries int

	// mu protects concurrent access to the cache
	mu sync.RWMutex

	// stopCh signals the cleanup goroutine to stop
	stopCh chan struct{}

	// stopOnce guards double Close
	stopOnce sync.Once
}

// New creates a result cache. If maxEntries is 0 the cache is
// unbounded. cleanupInterval controls the background expiry sweep; 0
// defaults to one minute.
func New(maxEntries int, cleanupInterval time.Duration) *ResultCache {
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}

	c := &ResultCache{
		entries:    make(map[string]*entry),
		maxEntries: maxEntries,
		stopCh:     make(chan struct{}),
	}

	go c.cleanupLoop(cleanupInterval)

	return c
}

// Get retrieves a cached value. An expired entry is treated as absent
// and evicted.
func (c *ResultCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	if !ok {
		c.mu.RUnlock()
		return nil, false
	}
	expired := !e.expiresAt.IsZero() && time.Now().After(e.expiresAt)
	value := e.value
	c.mu.RUnlock()

	if expired {
		c.mu.Lock()
		// Re-check under the write lock; the entry may have been
		// replaced with a fresh one in between.
		if e2, ok := c.entries[key]; ok && !e2.expiresAt.IsZero() && time.Now().After(e2.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	c.mu.Lock()
	if e2, ok := c.entries[key]; ok {
		e2.lastAccessedAt = time.Now()
	}
	c.mu.Unlock()

	return value, true
}

// Has reports whether a non-expired entry exists for the key, without
// touching its access time.
func (c *ResultCache) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		return false
	}
	return e.expiresAt.IsZero() || time.Now().Before(e.expiresAt)
}

// Set stores a value with the given TTL. A ttl of 0 means the entry
// never expires. At capacity the least recently accessed entry is
// evicted first.
func (c *ResultCache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		if _, exists := c.entries[key]; !exists {
			c.evictLRU()
		}
	}

	now := time.Now()
	expiresAt := time.Time{}
	if ttl > 0 {
		expiresAt = now.Add(ttl)
	}

	c.entries[key] = &entry{
		value:          value,
		createdAt:      now,
		expiresAt:      expiresAt,
		lastAccessedAt: now,
	}
}

// Delete removes an entry.
func (c *ResultCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear removes all entries.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
}

// Size returns the current number of entries, expired ones included
// until the next sweep.
func (c *ResultCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close stops the background cleanup goroutine. The cache remains
// usable afterwards, minus the sweep.
func (c *ResultCache) Close() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

// evictLRU removes the least recently accessed entry. Must be called
// with the write lock held.
func (c *ResultCache) evictLRU() {
	var oldestKey string
	var oldestTime time.Time

	for key, e := range c.entries {
		if oldestKey == "" || e.lastAccessedAt.Before(oldestTime) {
			oldestKey = key
			oldestTime = e.lastAccessedAt
		}
	}

	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// cleanupLoop periodically removes expired entries until Close is
// called.
func (c *ResultCache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stopCh:
			return
		}
	}
}

// removeExpired removes all expired entries.
func (c *ResultCache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}
