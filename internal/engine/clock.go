package engine

import (
	"time"

	"github.com/benbjohnson/clock"
)

// FrameClock measures frame time and paces the main loop to a tick rate.
type FrameClock struct {
	clk      clock.Clock
	interval time.Duration
	last     time.Time
	started  bool
}

// NewFrameClock creates a frame clock. A non-positive tick rate disables
// pacing.
func NewFrameClock(clk clock.Clock, tickRate int) *FrameClock {
	if clk == nil {
		clk = clock.New()
	}
	var interval time.Duration
	if tickRate > 0 {
		interval = time.Second / time.Duration(tickRate)
	}
	return &FrameClock{clk: clk, interval: interval}
}

// Tick returns the time elapsed since the previous Tick.
// The first call returns zero.
func (c *FrameClock) Tick() time.Duration {
	now := c.clk.Now()
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Wait sleeps until one interval has passed since the last Tick.
func (c *FrameClock) Wait() {
	if c.interval <= 0 || !c.started {
		return
	}
	if d := c.last.Add(c.interval).Sub(c.clk.Now()); d > 0 {
		c.clk.Sleep(d)
	}
}

// Interval returns the target frame duration.
func (c *FrameClock) Interval() time.Duration {
	return c.interval
}
