package usecase

import (
	"context"

	"realtime-client/internal/channel"
)

func (r *registry) EnsureNotificationChannel() bool {
	if !r.cfg.Supported {
		r.logger.Warnf(context.Background(), "push transport unsupported; notification channel not opened")
		return false
	}
	return r.ensure(channel.NotificationKey)
}

func (r *registry) EnsureProjectChannels(projectIDs []string) int {
	if !r.cfg.Supported {
		return 0
	}
	created := 0
	for _, id := range projectIDs {
		if id == "" {
			continue
		}
		if r.ensure(channel.ProjectKey(id)) {
			created++
		}
	}
	return created
}

func (r *registry) ensure(key channel.Key) bool {
	if _, ok := r.conns[key]; ok {
		return false
	}

	c := &connection{
		key:            key,
		url:            r.cfg.Endpoints.URL(key),
		dialer:         r.cfg.Dialer,
		exec:           r.cfg.Executor,
		sched:          r.cfg.Scheduler,
		deliver:        r.cfg.OnFrame,
		logger:         r.logger.With("channel", key.String()),
		reconnectDelay: r.cfg.ReconnectDelay,
		dialTimeout:    r.cfg.DialTimeout,
		join:           r.cfg.JoinProjects,
	}
	r.conns[key] = c
	r.order = append(r.order, key)
	c.open()
	return true
}

func (r *registry) Release(key channel.Key) bool {
	c, ok := r.conns[key]
	if !ok {
		return false
	}
	c.release()
	delete(r.conns, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.releasedSessions += c.sessions
	r.releasedCloses += c.closes
	r.releasedFrames += c.frames

	r.logger.Infof(context.Background(), "channel %s released", key)
	return true
}

func (r *registry) State(key channel.Key) (channel.State, bool) {
	c, ok := r.conns[key]
	if !ok {
		return "", false
	}
	return c.state(), true
}

func (r *registry) Channels() []channel.Info {
	out := make([]channel.Info, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.conns[k].info())
	}
	return out
}

func (r *registry) Stats() channel.Stats {
	st := channel.Stats{
		Channels: len(r.conns),
		Sessions: r.releasedSessions,
		Closes:   r.releasedCloses,
		Frames:   r.releasedFrames,
	}
	for _, c := range r.conns {
		switch c.state() {
		case channel.StateOpen:
			st.Open++
		case channel.StateConnecting:
			st.Connecting++
		default:
			st.Closed++
		}
		st.Sessions += c.sessions
		st.Closes += c.closes
		st.Frames += c.frames
	}
	return st
}

func (r *registry) Close() {
	for _, k := range append([]channel.Key(nil), r.order...) {
		r.Release(k)
	}
}
