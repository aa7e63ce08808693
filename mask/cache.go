package mask

import "sync"

// cache memoizes compiled artifacts by their exact input text. Keys are
// content-addressed and values immutable, so entries are never evicted.
// Concurrent first use of the same key computes the value once.
type cache[V any] struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry[V]
}

type cacheEntry[V any] struct {
	once  sync.Once
	value V
	err   error
}

func newCache[V any]() *cache[V] {
	return &cache[V]{entries: make(map[string]*cacheEntry[V])}
}

// load returns the cached value for key, calling compute on first use.
// Errors are cached as well; compute must be deterministic.
func (c *cache[V]) load(key string, compute func(string) (V, error)) (V, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = &cacheEntry[V]{}
		c.entries[key] = e
	}
	c.mu.Unlock()

	e.once.Do(func() {
		e.value, e.err = compute(key)
	})

	return e.value, e.err
}

// len returns the number of cached keys.
func (c *cache[V]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Package-level caches, one per artifact kind. The number of distinct keys is
// bounded by the masks registered in the process.
var (
	canonicalCache   = newCache[string]()
	variantCache     = newCache[[]string]()
	declarationCache = newCache[[]Param]()
	matcherCache     = newCache[*variantMatcher]()
)
