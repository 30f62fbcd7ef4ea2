// Package cache provides the shared result cache for geocoding queries:
// a keyed, time-bounded store that deduplicates identical concurrent
// fetches and serves completed results until they go stale.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/couchcryptid/address-entry/internal/observability"
)

// DefaultTTL is how long a completed result stays fresh.
const DefaultTTL = 30 * time.Minute

// Cache is a process-wide result cache. One instance is shared by every
// field and form on a page so identical queries dedupe across consumers;
// mutation by one consumer is immediately visible to all. Safe for
// concurrent use.
type Cache struct {
	ttl     time.Duration
	clock   clockwork.Clock
	metrics *observability.Metrics

	mu      sync.Mutex
	entries map[string]*entry
	group   singleflight.Group
}

type entry struct {
	value     any
	fetchedAt time.Time
	stale     bool
}

// New creates a Cache with the given staleness window.
func New(ttl time.Duration, clock clockwork.Clock, metrics *observability.Metrics) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:     ttl,
		clock:   clock,
		metrics: metrics,
		entries: make(map[string]*entry),
	}
}

// Key builds a cache key from an operation tag and its full request
// parameters, so requests differing only in bias position or filter are
// distinct entries. The tag doubles as the handle for Invalidate/Remove.
func Key(tag string, params any) string {
	b, err := json.Marshal(params)
	if err != nil {
		// Parameters are plain request structs; marshal failure means a
		// programming error, so fall back to an uncacheable unique-ish key.
		return fmt.Sprintf("%s:unmarshalable:%p", tag, params)
	}
	return tag + ":" + string(b)
}

// Get returns the cached value for key, or runs fetch to produce it.
// Identical concurrent calls for the same key share one in-flight fetch.
// Errors are never cached; the next access retries.
func (c *Cache) Get(ctx context.Context, key string, fetch func(ctx context.Context) (any, error)) (any, error) {
	operation := tagOf(key)

	c.mu.Lock()
	if e, ok := c.entries[key]; ok && !e.stale && c.clock.Since(e.fetchedAt) < c.ttl {
		c.mu.Unlock()
		c.metrics.CacheLookups.WithLabelValues(operation, "hit").Inc()
		return e.value, nil
	}
	c.mu.Unlock()
	c.metrics.CacheLookups.WithLabelValues(operation, "miss").Inc()

	value, err, _ := c.group.Do(key, func() (any, error) {
		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = &entry{value: v, fetchedAt: c.clock.Now()}
		c.mu.Unlock()
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Invalidate marks every entry under tag as stale; the next Get for their
// keys triggers a fresh fetch. Used when results are outdated by a context
// change rather than consumed.
func (c *Cache) Invalidate(tag string) {
	prefix := tag + ":"
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		if strings.HasPrefix(key, prefix) {
			e.stale = true
		}
	}
}

// Remove drops every entry under tag without refetching. Used when values
// were already consumed and caching them further has no benefit.
func (c *Cache) Remove(tag string) {
	prefix := tag + ":"
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// Len reports the number of stored entries, fresh or stale.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func tagOf(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i]
	}
	return key
}
