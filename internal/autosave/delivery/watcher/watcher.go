package watcher

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
)

func (w *watcher) Start() error {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fs.Add(w.dir); err != nil {
		fs.Close()
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	w.fs = fs

	w.wg.Add(1)
	go w.listen()

	w.logger.Infof(w.ctx, "auto-save watching %s", w.dir)
	return nil
}

func (w *watcher) listen() {
	defer w.wg.Done()

	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 && isFormFile(ev.Name) {
				w.schedule(ev.Name)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warnf(w.ctx, "auto-save watch error: %v", err)
		case <-w.ctx.Done():
			return
		}
	}
}

// schedule (re)starts the debounce timer of path so partial writes settle.
func (w *watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.ctx.Err() != nil {
		return
	}
	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		if w.ctx.Err() != nil {
			w.mu.Unlock()
			return
		}
		w.wg.Add(1)
		w.mu.Unlock()

		defer w.wg.Done()
		w.save(path)
	})
}

func (w *watcher) save(path string) {
	form, err := loadForm(path)
	if err != nil {
		w.logger.Warnf(w.ctx, "auto-save: %v", err)
		return
	}
	if err := w.uc.Save(w.ctx, form); err != nil {
		w.logger.Warnf(w.ctx, "auto-save %s failed: %v", form.Name, err)
	}
}

func (w *watcher) Shutdown(ctx context.Context) error {
	w.mu.Lock()
	w.cancel()
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
	w.mu.Unlock()

	var err error
	if w.fs != nil {
		err = w.fs.Close()
	}

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	w.logger.Infof(ctx, "auto-save watcher stopped")
	return err
}
