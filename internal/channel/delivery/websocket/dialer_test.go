package websocket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realtime-client/internal/channel"
	"realtime-client/pkg/log"
)

// echoServer replies to every frame with the same frame and pushes greeting first.
func echoServer(t *testing.T, greeting string) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()
		if greeting != "" {
			if err := ws.WriteMessage(websocket.TextMessage, []byte(greeting)); err != nil {
				return
			}
		}
		for {
			mt, data, err := ws.ReadMessage()
			if err != nil {
				return
			}
			if err := ws.WriteMessage(mt, data); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestDialReadsAndSends(t *testing.T) {
	srv := echoServer(t, `{"type":"notification","message":"hello"}`)
	d := NewDialer(log.NewNop(), Config{})

	conn, err := d.Dial(context.Background(), wsURL(srv))
	require.NoError(t, err)
	defer conn.Close()

	frame, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"notification","message":"hello"}`, string(frame))

	require.NoError(t, conn.Send(map[string]string{"type": "join_project"}))
	frame, err = conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"join_project"}`, string(frame))
}

func TestCloseEndsReads(t *testing.T) {
	srv := echoServer(t, "")
	d := NewDialer(log.NewNop(), Config{})

	conn, err := d.Dial(context.Background(), wsURL(srv))
	require.NoError(t, err)

	read := make(chan error, 1)
	go func() {
		_, err := conn.ReadMessage()
		read <- err
	}()

	require.NoError(t, conn.Close())
	select {
	case err := <-read:
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("read did not return after close")
	}

	assert.ErrorIs(t, conn.Send("x"), channel.ErrConnectionClosed)
}

func TestDialFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	d := NewDialer(log.NewNop(), Config{})
	_, err := d.Dial(context.Background(), wsURL(srv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestServerCloseEndsReads(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "bye"))
		ws.Close()
	}))
	defer srv.Close()

	d := NewDialer(log.NewNop(), Config{})
	conn, err := d.Dial(context.Background(), wsURL(srv))
	require.NoError(t, err)

	_, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway))
}
