package usecase

import (
	"context"
	"sync"

	"realtime-client/internal/project"
	"realtime-client/pkg/log"
)

// mirrorOp is the latest pending repository write for one project.
// A nil progress means delete.
type mirrorOp struct {
	projectID string
	progress  *project.Progress
}

// mirrorWorker applies repository writes on a single goroutine in the order
// they were queued. Ops for a project still waiting in the queue are replaced
// by newer ones, so a project's hash always ends at its last queued state.
type mirrorWorker struct {
	l    log.Logger
	repo project.Repository

	mu      sync.Mutex
	order   []string
	pending map[string]*mirrorOp
	closed  bool

	wake chan struct{}
	done chan struct{}
}

func newMirrorWorker(l log.Logger, repo project.Repository) *mirrorWorker {
	w := &mirrorWorker{
		l:       l,
		repo:    repo,
		pending: make(map[string]*mirrorOp),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *mirrorWorker) save(p project.Progress) {
	w.enqueue(&mirrorOp{projectID: p.ProjectID, progress: &p})
}

func (w *mirrorWorker) delete(projectID string) {
	w.enqueue(&mirrorOp{projectID: projectID})
}

func (w *mirrorWorker) enqueue(op *mirrorOp) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	if _, queued := w.pending[op.projectID]; !queued {
		w.order = append(w.order, op.projectID)
	}
	w.pending[op.projectID] = op
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// next pops the oldest queued op. ok is false when the queue is empty.
func (w *mirrorWorker) next() (op *mirrorOp, closed, ok bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.order) == 0 {
		return nil, w.closed, false
	}
	id := w.order[0]
	w.order = w.order[1:]
	op = w.pending[id]
	delete(w.pending, id)
	return op, w.closed, true
}

func (w *mirrorWorker) run() {
	defer close(w.done)
	for {
		op, closed, ok := w.next()
		if !ok {
			if closed {
				return
			}
			<-w.wake
			continue
		}
		w.apply(op)
	}
}

func (w *mirrorWorker) apply(op *mirrorOp) {
	ctx, cancel := context.WithTimeout(log.WithContext(context.Background(), w.l), mirrorTimeout)
	defer cancel()

	if op.progress == nil {
		if err := w.repo.DeleteProgress(ctx, op.projectID); err != nil {
			w.l.Warnf(ctx, "project.usecase.mirror: delete %s: %v", op.projectID, err)
		}
		return
	}
	if err := w.repo.SaveProgress(ctx, *op.progress); err != nil {
		w.l.Warnf(ctx, "project.usecase.mirror: save %s: %v", op.projectID, err)
	}
}

// close stops accepting ops and waits for the queued ones to be written.
func (w *mirrorWorker) close(ctx context.Context) error {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	select {
	case w.wake <- struct{}{}:
	default:
	}

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
