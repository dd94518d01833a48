package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realtime-client/internal/app"
	"realtime-client/internal/channel"
	"realtime-client/internal/page"
	"realtime-client/internal/router"
	"realtime-client/pkg/log"
)

type fakeController struct {
	statusErr error
	projects  map[string]bool
	dismissed map[string]bool
}

func newFakeController() *fakeController {
	return &fakeController{projects: map[string]bool{}, dismissed: map[string]bool{}}
}

func (f *fakeController) Status(ctx context.Context) (app.Status, error) {
	return app.Status{Router: router.Stats{Decoded: 3, Routed: 2}}, f.statusErr
}

func (f *fakeController) Snapshot(ctx context.Context) (page.Snapshot, error) {
	return page.Snapshot{Regions: []page.RegionSnapshot{{Name: page.RegionMain}}}, nil
}

func (f *fakeController) Channels(ctx context.Context) ([]channel.Info, error) {
	return []channel.Info{{Key: channel.NotificationKey.String(), State: channel.StateOpen}}, nil
}

func (f *fakeController) AddProject(ctx context.Context, id string) (bool, error) {
	if strings.TrimSpace(id) == "" {
		return false, app.ErrEmptyProjectID
	}
	if f.projects[id] {
		return false, nil
	}
	f.projects[id] = true
	return true, nil
}

func (f *fakeController) RemoveProject(ctx context.Context, id string) (bool, error) {
	if !f.projects[id] {
		return false, nil
	}
	delete(f.projects, id)
	return true, nil
}

func (f *fakeController) Dismiss(ctx context.Context, id string) (bool, error) {
	if id == "notification-boom" {
		return false, errors.New("boom")
	}
	if f.dismissed[id] {
		return false, nil
	}
	f.dismissed[id] = true
	return true, nil
}

func newServer(t *testing.T, ctl Controller) *HTTPServer {
	t.Helper()
	srv, err := New(log.NewNop(), Config{
		Addr:       "127.0.0.1:0",
		Mode:       gin.TestMode,
		PageOrigin: "http://localhost:8000",
		Controller: ctl,
	})
	require.NoError(t, err)
	return srv
}

func do(srv *HTTPServer, method, path string) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestNewRequiresController(t *testing.T) {
	_, err := New(log.NewNop(), Config{})
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	ctl := newFakeController()
	srv := newServer(t, ctl)

	w, body := do(srv, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "healthy", data["status"])
	stats := data["stats"].(map[string]any)
	assert.Contains(t, stats, "router")

	ctl.statusErr = errors.New("loop: stopped")
	w, _ = do(srv, http.MethodGet, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestPageAndChannels(t *testing.T) {
	srv := newServer(t, newFakeController())

	w, body := do(srv, http.MethodGet, Api+"/page")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body["data"], "regions")

	w, body = do(srv, http.MethodGet, Api+"/channels")
	require.Equal(t, http.StatusOK, w.Code)
	infos := body["data"].([]any)
	assert.Len(t, infos, 1)
}

func TestProjects(t *testing.T) {
	srv := newServer(t, newFakeController())

	w, body := do(srv, http.MethodPost, Api+"/projects/42")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["data"].(map[string]any)["added"])

	w, body = do(srv, http.MethodPost, Api+"/projects/42")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["data"].(map[string]any)["added"])

	w, _ = do(srv, http.MethodPost, Api+"/projects/%20")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(srv, http.MethodDelete, Api+"/projects/42")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(srv, http.MethodDelete, Api+"/projects/42")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDismiss(t *testing.T) {
	srv := newServer(t, newFakeController())

	w, body := do(srv, http.MethodPost, Api+"/notifications/notification-1/dismiss")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["data"].(map[string]any)["dismissed"])

	w, body = do(srv, http.MethodPost, Api+"/notifications/notification-1/dismiss")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["data"].(map[string]any)["dismissed"])

	w, _ = do(srv, http.MethodPost, Api+"/notifications/notification-boom/dismiss")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w, _ = do(srv, http.MethodPost, Api+"/notifications/main/dismiss")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartShutdown(t *testing.T) {
	srv := newServer(t, newFakeController())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	require.NoError(t, srv.Shutdown(context.Background()))
	assert.NoError(t, <-errCh)
}
