package watcher

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"realtime-client/internal/autosave"
	"realtime-client/pkg/log"
)

const DefaultDebounce = 250 * time.Millisecond

type Watcher interface {
	Start() error
	Shutdown(ctx context.Context) error
}

type watcher struct {
	dir      string
	debounce time.Duration
	uc       autosave.UseCase
	logger   log.Logger

	// Lifecycle fields
	fs     *fsnotify.Watcher
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New watches dir for form files and saves each one after it settles.
func New(dir string, debounce time.Duration, uc autosave.UseCase, logger log.Logger) Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &watcher{
		dir:      dir,
		debounce: debounce,
		uc:       uc,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
		timers:   make(map[string]*time.Timer),
	}
}
