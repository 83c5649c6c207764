package copybutton

import (
	"log"
	"time"
)

// Option customizes a [Button].
type Option interface {
	apply(*Button)
}

type optionFunc func(*Button)

func (f optionFunc) apply(b *Button) { f(b) }

// WithLogger specifies where copy failures are reported.
// Defaults to the standard logger.
func WithLogger(l *log.Logger) Option {
	return optionFunc(func(b *Button) {
		b.log = l
	})
}

// WithDelay overrides how long the button stays copied.
// Defaults to [ResetDelay].
func WithDelay(d time.Duration) Option {
	return optionFunc(func(b *Button) {
		b.delay = d
	})
}

// WithClock specifies the source of timers.
// Defaults to [SystemClock].
func WithClock(c Clock) Option {
	return optionFunc(func(b *Button) {
		b.clock = c
	})
}

// OnChange registers a function called
// every time the button's copied state flips.
//
// The function is called without any locks held,
// and for resets, on the timer's goroutine.
func OnChange(fn func(copied bool)) Option {
	return optionFunc(func(b *Button) {
		b.onChange = fn
	})
}
