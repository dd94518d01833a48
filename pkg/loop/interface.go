package loop

import "time"

// Executor queues work onto the event loop.
type Executor interface {
	// Post queues fn. It reports false if the loop has stopped.
	Post(fn func()) bool
}

// Scheduler runs fn on the event loop after d.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Handle
}

// Handle is a cancellable scheduled action.
type Handle interface {
	// Cancel prevents the action from running. It reports whether this call
	// cancelled it; it returns false if the action already ran or was
	// already cancelled.
	Cancel() bool
}
