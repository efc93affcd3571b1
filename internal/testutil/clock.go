// Package testutil provides deterministic helpers for tests.
package testutil

import (
	"sync"
	"time"
)

// FixedClock hands out a fixed base time advanced by one second per call.
// History tests use it so recorded timestamps are stable across runs.
//
// Thread-safety: all methods are safe for concurrent use.
type FixedClock struct {
	mu   sync.Mutex
	base time.Time
	n    int
}

// NewFixedClock creates a clock anchored at the given base time.
func NewFixedClock(base time.Time) *FixedClock {
	return &FixedClock{base: base}
}

// Now returns base plus one second per prior call.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.base.Add(time.Duration(c.n) * time.Second)
	c.n++
	return t
}

// Reset rewinds the clock to its base time.
func (c *FixedClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n = 0
}
