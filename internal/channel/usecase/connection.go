package usecase

import (
	"context"
	"time"

	"realtime-client/internal/channel"
	"realtime-client/pkg/log"
	"realtime-client/pkg/loop"
)

// joinProjectFrame is sent once per project session when joining is enabled.
var joinProjectFrame = map[string]string{"type": "join_project"}

// session is one transport attempt. Its identity ends when it closes.
type session struct {
	id     int64
	state  channel.State
	conn   channel.Conn
	cancel context.CancelFunc
}

// connection keeps exactly one channel alive for its key. Every method runs
// on the event loop; goroutines only perform I/O and post results back.
type connection struct {
	key     channel.Key
	url     string
	dialer  channel.Dialer
	exec    loop.Executor
	sched   loop.Scheduler
	deliver channel.FrameHandler
	logger  log.Logger

	reconnectDelay time.Duration
	dialTimeout    time.Duration
	join           bool

	current  *session
	retry    loop.Handle
	released bool

	sessions  int64
	closes    int64
	frames    int64
	lastError string
}

// open begins a new session. It is also the reconnect action.
func (c *connection) open() {
	if c.released {
		return
	}
	c.retry = nil
	c.sessions++

	s := &session{id: c.sessions, state: channel.StateConnecting}
	c.current = s

	ctx, cancel := context.WithTimeout(context.Background(), c.dialTimeout)
	s.cancel = cancel

	go func() {
		conn, err := c.dialer.Dial(ctx, c.url)
		cancel()
		if !c.exec.Post(func() { c.dialed(s, conn, err) }) && conn != nil {
			conn.Close()
		}
	}()
}

func (c *connection) dialed(s *session, conn channel.Conn, err error) {
	if s != c.current || c.released || s.state != channel.StateConnecting {
		if conn != nil {
			conn.Close()
		}
		return
	}
	if err != nil {
		c.closed(s, err)
		return
	}

	s.conn = conn
	s.state = channel.StateOpen
	c.logger.Infof(context.Background(), "channel %s open (session %d)", c.key, s.id)

	if c.join && c.key.Kind == channel.KindProject {
		if err := conn.Send(joinProjectFrame); err != nil {
			c.logger.Warnf(context.Background(), "channel %s: join failed: %v", c.key, err)
		}
	}

	go c.readPump(s, conn)
}

// readPump reads frames until the transport fails. It is the only reader of conn.
func (c *connection) readPump(s *session, conn channel.Conn) {
	for {
		frame, err := conn.ReadMessage()
		if err != nil {
			c.exec.Post(func() { c.closed(s, err) })
			return
		}
		if !c.exec.Post(func() { c.receive(s, frame) }) {
			conn.Close()
			return
		}
	}
}

func (c *connection) receive(s *session, frame []byte) {
	if s != c.current || s.state != channel.StateOpen {
		return
	}
	c.frames++
	c.deliver(c.key, frame)
}

// closed moves s to Closed and schedules exactly one reconnect for it.
func (c *connection) closed(s *session, cause error) {
	if s != c.current || s.state == channel.StateClosed {
		return
	}
	s.state = channel.StateClosed
	if s.conn != nil {
		s.conn.Close()
	}
	c.closes++
	if cause != nil {
		c.lastError = cause.Error()
	}

	if c.released {
		return
	}
	c.logger.Infof(context.Background(), "channel %s closed (session %d): %v; reconnecting in %s",
		c.key, s.id, cause, c.reconnectDelay)
	c.retry = c.sched.AfterFunc(c.reconnectDelay, c.open)
}

// release ends the connection for good.
func (c *connection) release() {
	if c.released {
		return
	}
	c.released = true

	if c.retry != nil {
		c.retry.Cancel()
		c.retry = nil
	}

	s := c.current
	if s == nil || s.state == channel.StateClosed {
		return
	}
	if s.cancel != nil {
		s.cancel()
	}
	if s.conn != nil {
		s.conn.Close()
	}
	s.state = channel.StateClosed
}

func (c *connection) state() channel.State {
	if c.current == nil {
		return channel.StateClosed
	}
	return c.current.state
}

func (c *connection) info() channel.Info {
	return channel.Info{
		Key:       c.key.String(),
		URL:       c.url,
		State:     c.state(),
		Sessions:  c.sessions,
		Frames:    c.frames,
		LastError: c.lastError,
	}
}
