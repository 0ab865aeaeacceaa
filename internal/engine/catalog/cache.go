package catalog

import (
	"context"
	"sync"
)

// Loader fetches the full reference list from the backend.
type Loader[T Filterable] func(ctx context.Context) ([]T, error)

// Cache holds the current snapshot of one selectable reference list and
// answers substring-filter queries against it. Safe for concurrent use.
type Cache[T Filterable] struct {
	mu       sync.Mutex
	load     Loader[T]
	snapshot []T
}

// NewCache creates a cache backed by the given loader.
func NewCache[T Filterable](load Loader[T]) *Cache[T] {
	return &Cache[T]{load: load}
}

// Load replaces the snapshot with a fresh fetch. On failure the snapshot is
// emptied and the error returned; the caller surfaces it as a non-fatal
// notice and the UI simply shows an empty list.
func (c *Cache[T]) Load(ctx context.Context) ([]T, error) {
	entities, err := c.load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.snapshot = nil
		return nil, err
	}
	c.snapshot = entities
	return c.copyLocked(), nil
}

// Snapshot returns the last fetched full list.
func (c *Cache[T]) Snapshot() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copyLocked()
}

// Filter projects the snapshot through the substring filter.
func (c *Cache[T]) Filter(term string) []T {
	return Filter(term, c.Snapshot())
}

func (c *Cache[T]) copyLocked() []T {
	out := make([]T, len(c.snapshot))
	copy(out, c.snapshot)
	return out
}
