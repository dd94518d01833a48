package loop

import (
	"context"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"realtime-client/pkg/log"
)

// Loop is a single-goroutine task queue.
type Loop struct {
	tasks  chan func()
	logger log.Logger

	quit     chan struct{}
	done     chan struct{}
	stopOnce sync.Once

	executed  atomic.Int64
	recovered atomic.Int64
}

// Stats reports loop counters.
type Stats struct {
	Queued    int   `json:"queued"`
	Executed  int64 `json:"executed"`
	Recovered int64 `json:"recovered"`
}

// New creates a Loop whose queue holds up to buffer pending tasks.
func New(logger log.Logger, buffer int) *Loop {
	if buffer <= 0 {
		buffer = 256
	}
	return &Loop{
		tasks:  make(chan func(), buffer),
		logger: logger,
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Run executes tasks until ctx is done or Stop is called. It must be called
// exactly once.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.done)

	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return
		case <-l.quit:
			return
		case fn := <-l.tasks:
			l.exec(fn)
		}
	}
}

func (l *Loop) exec(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.recovered.Add(1)
			l.logger.Errorf(context.Background(), "loop: task panicked: %v\n%s", r, debug.Stack())
		}
	}()
	l.executed.Add(1)
	fn()
}

// Post queues fn for execution on the loop.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.quit:
		return false
	default:
	}

	select {
	case l.tasks <- fn:
		return true
	case <-l.quit:
		return false
	}
}

// Do runs fn on the loop and waits for it to finish.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if !l.Post(func() {
		defer close(finished)
		fn()
	}) {
		return ErrStopped
	}

	select {
	case <-finished:
		return nil
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AfterFunc schedules fn to run on the loop after d.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Handle {
	h := &timer{}
	h.t = time.AfterFunc(d, func() {
		l.Post(func() {
			if !h.state.CompareAndSwap(timerPending, timerFired) {
				return
			}
			fn()
		})
	})
	return h
}

// Stop ends the loop. Pending tasks are discarded.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.quit) })
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Stats returns a snapshot of the loop counters.
func (l *Loop) Stats() Stats {
	return Stats{
		Queued:    len(l.tasks),
		Executed:  l.executed.Load(),
		Recovered: l.recovered.Load(),
	}
}

const (
	timerPending int32 = iota
	timerFired
	timerCancelled
)

type timer struct {
	t     *time.Timer
	state atomic.Int32
}

func (h *timer) Cancel() bool {
	if !h.state.CompareAndSwap(timerPending, timerCancelled) {
		return false
	}
	h.t.Stop()
	return true
}
