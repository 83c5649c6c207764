package copybutton

import "time"

// Clock schedules the deferred reset of a [Button].
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending call scheduled by a [Clock].
type Timer interface {
	// Stop prevents the call from running.
	// It reports false if the call already ran or was stopped.
	Stop() bool
}

// SystemClock is a [Clock] backed by the time package.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
