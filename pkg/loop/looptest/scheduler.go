// Package looptest provides a manually driven scheduler for tests.
package looptest

import (
	"sync"
	"time"

	"realtime-client/pkg/loop"
)

// Scheduler records every AfterFunc call instead of starting a real timer.
// Tests decide when a timer fires.
type Scheduler struct {
	mu     sync.Mutex
	timers []*Timer
}

// Timer is one recorded AfterFunc call.
type Timer struct {
	Delay time.Duration

	mu        sync.Mutex
	fn        func()
	fired     bool
	cancelled bool
}

var _ loop.Scheduler = (*Scheduler)(nil)

// AfterFunc records fn and returns its handle.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) loop.Handle {
	t := &Timer{Delay: d, fn: fn}
	s.mu.Lock()
	s.timers = append(s.timers, t)
	s.mu.Unlock()
	return t
}

// All returns every recorded timer in scheduling order.
func (s *Scheduler) All() []*Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Timer, len(s.timers))
	copy(out, s.timers)
	return out
}

// Pending returns timers that have neither fired nor been cancelled.
func (s *Scheduler) Pending() []*Timer {
	var out []*Timer
	for _, t := range s.All() {
		if t.Pending() {
			out = append(out, t)
		}
	}
	return out
}

// Fire runs the timer's function in the caller's goroutine. It reports false
// if the timer was cancelled or already fired.
func (t *Timer) Fire() bool {
	t.mu.Lock()
	if t.fired || t.cancelled {
		t.mu.Unlock()
		return false
	}
	t.fired = true
	fn := t.fn
	t.mu.Unlock()

	fn()
	return true
}

// Cancel implements loop.Handle.
func (t *Timer) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fired || t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}

// Pending reports whether the timer can still fire.
func (t *Timer) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.fired && !t.cancelled
}

// Cancelled reports whether the timer was cancelled.
func (t *Timer) Cancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancelled
}
