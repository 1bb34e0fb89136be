package ttlcache

import (
	"sync"
	"time"

	"greenrfq/internal/pkg/clock"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a TTL-bounded in-memory map safe for concurrent use.
// Expired entries are dropped lazily on access.
type Cache[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]entry[V]
	ttl   time.Duration
	clk   clock.Clock
}

func New[K comparable, V any](ttl time.Duration, clk clock.Clock) *Cache[K, V] {
	return &Cache[K, V]{
		items: make(map[K]entry[V]),
		ttl:   ttl,
		clk:   clk,
	}
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		var zero V
		return zero, false
	}
	if c.clk.Now().After(e.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have refreshed it.
		if cur, still := c.items[key]; still && c.clk.Now().After(cur.expiresAt) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	c.items[key] = entry[V]{value: value, expiresAt: c.clk.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// Invalidate removes a single key so the next read refetches.
func (c *Cache[K, V]) Invalidate(key K) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	c.items = make(map[K]entry[V])
	c.mu.Unlock()
}

func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
