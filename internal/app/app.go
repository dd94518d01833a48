package app

import (
	"context"
	"errors"
	"strings"

	"realtime-client/internal/autosave"
	"realtime-client/internal/channel"
	"realtime-client/internal/page"
	"realtime-client/pkg/discord"
	"realtime-client/pkg/loop"
)

// Start runs the event loop and boots the page: permission is requested once,
// then the notification channel and one channel per rendered project are
// opened. The form watcher starts last.
func (a *App) Start(ctx context.Context) error {
	a.mu.Lock()
	if a.started {
		a.mu.Unlock()
		return ErrAlreadyStarted
	}
	a.started = true
	a.mu.Unlock()

	// The loop outlives ctx; Shutdown stops it.
	go a.loop.Run(context.Background())

	err := a.loop.Do(ctx, func() {
		a.notifications.RequestPermission(ctx)
		a.channels.EnsureNotificationChannel()
		n := a.channels.EnsureProjectChannels(a.document.ProjectIDs())
		a.l.Infof(ctx, "booted with %d project channel(s)", n)
	})
	if err != nil {
		return err
	}

	if a.watcher != nil {
		if err := a.watcher.Start(); err != nil {
			a.l.Warnf(ctx, "auto-save disabled: %v", err)
			a.watcher = nil
		}
	}
	return nil
}

// Shutdown releases every channel, cancelling pending reconnects, then stops
// the loop and closes external clients.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error

	if a.watcher != nil {
		if err := a.watcher.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	a.mu.Lock()
	started := a.started
	a.mu.Unlock()

	if started {
		if err := a.loop.Do(ctx, a.channels.Close); err != nil && !errors.Is(err, loop.ErrStopped) {
			errs = append(errs, err)
		}
		a.loop.Stop()
		select {
		case <-a.loop.Done():
		case <-ctx.Done():
			errs = append(errs, ctx.Err())
		}
	} else {
		a.channels.Close()
		a.loop.Stop()
	}

	// Queued mirror writes go out before the Redis client closes.
	if err := a.projects.Close(ctx); err != nil {
		errs = append(errs, err)
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.discord != nil {
		a.discord.Close()
	}

	a.l.Info(ctx, "client stopped")
	return errors.Join(errs...)
}

// Status collects every component's counters on the loop.
func (a *App) Status(ctx context.Context) (Status, error) {
	var st Status
	err := a.loop.Do(ctx, func() {
		st.Channels = a.channels.Stats()
		st.Router = a.router.Stats()
		st.Notifications = a.notifications.Stats()
		st.Projects = a.projects.Stats()
		if a.autosave != nil {
			as := a.autosave.Stats()
			st.AutoSave = &as
		}
	})
	st.Loop = a.loop.Stats()
	return st, err
}

// Snapshot returns the rendered page.
func (a *App) Snapshot(ctx context.Context) (page.Snapshot, error) {
	var snap page.Snapshot
	err := a.loop.Do(ctx, func() { snap = a.document.Snapshot() })
	return snap, err
}

// Channels lists tracked channels with their current state.
func (a *App) Channels(ctx context.Context) ([]channel.Info, error) {
	var infos []channel.Info
	err := a.loop.Do(ctx, func() { infos = a.channels.Channels() })
	return infos, err
}

// AddProject renders a project with a progress bar and ensures its channel.
// It reports whether the project was newly rendered.
func (a *App) AddProject(ctx context.Context, projectID string) (bool, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return false, ErrEmptyProjectID
	}
	var added bool
	err := a.loop.Do(ctx, func() {
		added = a.document.AddProject(projectID, true)
		a.channels.EnsureProjectChannels([]string{projectID})
	})
	return added, err
}

// RemoveProject removes a project from the page and releases its channel.
// It reports whether the project was rendered.
func (a *App) RemoveProject(ctx context.Context, projectID string) (bool, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return false, ErrEmptyProjectID
	}
	var removed bool
	err := a.loop.Do(ctx, func() {
		removed = a.document.RemoveProject(projectID)
		a.channels.Release(channel.ProjectKey(projectID))
		a.projects.Forget(ctx, projectID)
	})
	return removed, err
}

// Dismiss removes a notification or toast on behalf of the user.
func (a *App) Dismiss(ctx context.Context, elementID string) (bool, error) {
	var dismissed bool
	err := a.loop.Do(ctx, func() { dismissed = a.notifications.Dismiss(ctx, elementID) })
	return dismissed, err
}

// Save submits a form immediately, bypassing the watcher.
func (a *App) Save(ctx context.Context, form autosave.Form) error {
	if a.autosave == nil {
		return ErrAutoSaveDisabled
	}
	return a.autosave.Save(ctx, form)
}

// Origin is the scheme and host of the page, used for CORS on the control server.
func (a *App) Origin() string {
	return a.origin
}

// Discord returns the webhook client, or nil when none is configured.
func (a *App) Discord() discord.IDiscord {
	return a.discord
}
