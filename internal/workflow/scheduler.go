package workflow

import "time"

// Task is a handle on one scheduled callback.
type Task interface {
	// Cancel stops the callback from running. It reports false when the
	// callback already ran or was cancelled before.
	Cancel() bool
}

// Scheduler runs callbacks after a delay on the caller's event loop.
type Scheduler interface {
	Now() time.Time
	Schedule(d time.Duration, fn func()) Task
}
