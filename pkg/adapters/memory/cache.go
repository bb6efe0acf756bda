package memory

import (
	"context"
	"slices"
	"time"

	"github.com/aretw0/chempath/pkg/domain"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMaxEntries bounds a Cache built without WithMaxEntries.
const DefaultMaxEntries = 10000

// Cache implements ports.PathCache in memory. It holds at most maxEntries
// outcomes and evicts the least recently used one when full.
// Safe for concurrent use.
type Cache struct {
	entries    *lru.Cache[string, cacheEntry]
	maxEntries int
	ttl        time.Duration
	now        func() time.Time
}

type cacheEntry struct {
	outcome domain.Outcome
	expires time.Time // zero means never
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithTTL sets how long entries stay valid. Zero keeps them until evicted.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithMaxEntries caps the number of stored outcomes. Values below one
// keep DefaultMaxEntries.
func WithMaxEntries(n int) CacheOption {
	return func(c *Cache) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		c.now = now
	}
}

// NewCache creates a new in-memory cache.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		maxEntries: DefaultMaxEntries,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	// lru.New only fails for a non-positive size, which WithMaxEntries rules out.
	c.entries, _ = lru.New[string, cacheEntry](c.maxEntries)
	return c
}

// Get returns a copy of the stored outcome.
func (c *Cache) Get(ctx context.Context, key string) (domain.Outcome, error) {
	e, ok := c.entries.Get(key)
	if !ok {
		return domain.Outcome{}, domain.ErrCacheMiss
	}
	if !e.expires.IsZero() && !c.now().Before(e.expires) {
		c.entries.Remove(key)
		return domain.Outcome{}, domain.ErrCacheMiss
	}
	return cloneOutcome(e.outcome), nil
}

// Put stores a copy of the outcome.
func (c *Cache) Put(ctx context.Context, key string, outcome domain.Outcome) error {
	e := cacheEntry{outcome: cloneOutcome(outcome)}
	if c.ttl > 0 {
		e.expires = c.now().Add(c.ttl)
	}
	c.entries.Add(key, e)
	return nil
}

// Delete removes the entry.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.entries.Remove(key)
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// cloneOutcome copies every slice so callers can't mutate cached state.
// Compounds are immutable values and are shared.
func cloneOutcome(o domain.Outcome) domain.Outcome {
	o.Path.Compounds = slices.Clone(o.Path.Compounds)
	steps := make([]domain.Reaction, len(o.Path.Steps))
	for i, s := range o.Path.Steps {
		s.Reagents = slices.Clone(s.Reagents)
		s.Byproducts = slices.Clone(s.Byproducts)
		steps[i] = s
	}
	if o.Path.Steps == nil {
		steps = nil
	}
	o.Path.Steps = steps
	return o
}
