package admission

import (
	"sync"
	"time"
)

// Clock supplies the current tick count. Ticks are opaque 64-bit integers
// that must be non-decreasing across calls.
type Clock interface {
	Now() int64
}

// WallClock is the production clock; ticks are milliseconds since the Unix epoch.
type WallClock struct{}

// Now returns the current time in milliseconds since the Unix epoch.
func (WallClock) Now() int64 { return time.Now().UnixMilli() }

// FixedClock returns a caller-settable tick. Tests move it between
// decisions to simulate the passage of time.
type FixedClock struct {
	mu sync.Mutex
	v  int64
}

// NewFixedClock returns a FixedClock starting at v.
func NewFixedClock(v int64) *FixedClock {
	return &FixedClock{v: v}
}

// Now returns the currently set tick.
func (c *FixedClock) Now() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.v
}

// Set replaces the current tick.
func (c *FixedClock) Set(v int64) {
	c.mu.Lock()
	c.v = v
	c.mu.Unlock()
}

// Advance moves the clock forward by d ticks.
func (c *FixedClock) Advance(d int64) {
	c.mu.Lock()
	c.v += d
	c.mu.Unlock()
}
