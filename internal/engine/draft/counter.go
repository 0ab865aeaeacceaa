// Package draft holds the in-progress record being composed: the bounded
// quantity counter plus date, selections and note, validated before
// submission.
package draft

import "sync"

// floor is the lowest quantity a record can carry.
const floor = 1

// Counter is the bounded integer counter backing the quantity field.
// Unbounded above, clamped to 1 below. Safe for concurrent use.
type Counter struct {
	mu    sync.Mutex
	value int
}

// NewCounter creates a counter at the floor value.
func NewCounter() *Counter {
	return &Counter{value: floor}
}

// Value returns the current quantity.
func (c *Counter) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Increment adds one.
func (c *Counter) Increment() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value++
	return c.value
}

// Decrement subtracts one, a no-op at the floor rather than an error.
func (c *Counter) Decrement() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.value > floor {
		c.value--
	}
	return c.value
}

// Set assigns a direct value, silently clamped to the floor.
func (c *Counter) Set(v int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v < floor {
		v = floor
	}
	c.value = v
	return c.value
}

// Reset returns the counter to the floor value.
func (c *Counter) Reset() {
	c.mu.Lock()
	c.value = floor
	c.mu.Unlock()
}
