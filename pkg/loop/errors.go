package loop

import "errors"

var (
	// ErrStopped is returned when work is posted to a loop that is no longer running.
	ErrStopped = errors.New("loop: stopped")
)
