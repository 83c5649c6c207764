// Package copybuttontest provides a manually advanced clock
// for tests of code built on copybutton.
package copybuttontest

import (
	"sync"
	"time"

	"go.abhg.dev/snippet/internal/copybutton"
)

// Clock is a [copybutton.Clock] that only moves forward
// when Add is called.
// The zero value is ready to use.
type Clock struct {
	mu     sync.Mutex
	now    time.Duration // since the clock was created
	timers []*timer
}

var _ copybutton.Clock = (*Clock)(nil)

type timer struct {
	clock *Clock
	at    time.Duration
	fn    func()
	done  bool // fired or stopped
}

// AfterFunc schedules f to run once the clock has advanced by d.
func (c *Clock) AfterFunc(d time.Duration, f func()) copybutton.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &timer{clock: c, at: c.now + d, fn: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *timer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	return true
}

// Add advances the clock by d,
// running due timers in deadline order on the calling goroutine.
func (c *Clock) Add(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		var next *timer
		for _, t := range c.timers {
			if t.done || t.at > target {
				continue
			}
			if next == nil || t.at < next.at {
				next = t
			}
		}
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		next.done = true
		c.now = next.at
		c.mu.Unlock()

		next.fn()
	}
}

// Pending reports the number of timers
// that have neither fired nor been stopped.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int
	for _, t := range c.timers {
		if !t.done {
			n++
		}
	}
	return n
}

// Scheduled reports the total number of timers ever scheduled.
func (c *Clock) Scheduled() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}
