package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"realtime-client/internal/channel"
	"realtime-client/pkg/log"
)

const sendBuffer = 64

// Config tunes the transport.
type Config struct {
	PingInterval    time.Duration
	PongWait        time.Duration
	WriteWait       time.Duration
	MaxMessageSize  int64
	ReadBufferSize  int
	WriteBufferSize int
	// Header is sent with every handshake, e.g. Origin or Cookie.
	Header http.Header
}

type dialer struct {
	cfg    Config
	ws     *websocket.Dialer
	logger log.Logger
}

// NewDialer returns a channel.Dialer backed by gorilla/websocket.
func NewDialer(logger log.Logger, cfg Config) channel.Dialer {
	if cfg.PongWait <= 0 {
		cfg.PongWait = 60 * time.Second
	}
	if cfg.PingInterval <= 0 || cfg.PingInterval >= cfg.PongWait {
		cfg.PingInterval = cfg.PongWait * 9 / 10
	}
	if cfg.WriteWait <= 0 {
		cfg.WriteWait = 10 * time.Second
	}
	return &dialer{
		cfg: cfg,
		ws: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: 45 * time.Second,
			ReadBufferSize:   cfg.ReadBufferSize,
			WriteBufferSize:  cfg.WriteBufferSize,
		},
		logger: logger,
	}
}

func (d *dialer) Dial(ctx context.Context, url string) (channel.Conn, error) {
	ws, resp, err := d.ws.DialContext(ctx, url, d.cfg.Header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dial %s: %w (status %d)", url, err, resp.StatusCode)
		}
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}

	c := &conn{
		ws:     ws,
		cfg:    d.cfg,
		send:   make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
		logger: d.logger,
		url:    url,
	}
	if d.cfg.MaxMessageSize > 0 {
		ws.SetReadLimit(d.cfg.MaxMessageSize)
	}
	ws.SetReadDeadline(time.Now().Add(d.cfg.PongWait))
	ws.SetPongHandler(func(string) error {
		ws.SetReadDeadline(time.Now().Add(d.cfg.PongWait))
		return nil
	})
	// Server pings count as liveness too.
	ws.SetPingHandler(func(data string) error {
		ws.SetReadDeadline(time.Now().Add(d.cfg.PongWait))
		err := ws.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(d.cfg.WriteWait))
		if err == websocket.ErrCloseSent {
			return nil
		}
		return err
	})

	go c.writePump()
	return c, nil
}

// conn has one reader (the caller of ReadMessage) and one writer (writePump).
type conn struct {
	ws     *websocket.Conn
	cfg    Config
	send   chan []byte
	done   chan struct{}
	once   sync.Once
	logger log.Logger
	url    string
}

func (c *conn) ReadMessage() ([]byte, error) {
	for {
		mt, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warnf(context.Background(), "websocket read error from %s: %v", c.url, err)
			}
			c.Close()
			return nil, err
		}
		if mt == websocket.TextMessage || mt == websocket.BinaryMessage {
			return data, nil
		}
	}
}

func (c *conn) Send(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	select {
	case <-c.done:
		return channel.ErrConnectionClosed
	default:
	}

	select {
	case c.send <- data:
		return nil
	case <-c.done:
		return channel.ErrConnectionClosed
	default:
		return channel.ErrSendBufferFull
	}
}

// Close stops the writer, which sends a close frame and tears down the socket.
func (c *conn) Close() error {
	c.once.Do(func() { close(c.done) })
	return nil
}

func (c *conn) writePump() {
	ticker := time.NewTicker(c.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case message := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
				c.logger.Warnf(context.Background(), "websocket write to %s failed: %v", c.url, err)
				c.Close()
				return
			}

		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.Close()
				return
			}

		case <-c.done:
			c.ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(c.cfg.WriteWait))
			return
		}
	}
}
