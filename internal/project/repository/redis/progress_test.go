package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realtime-client/internal/project"
	"realtime-client/pkg/log"
)

type fakeRedis struct {
	hashes  map[string]map[string]any
	ttls    map[string]time.Duration
	deleted []string
	hsetErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{hashes: map[string]map[string]any{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) HSet(_ context.Context, key string, values map[string]any) error {
	if f.hsetErr != nil {
		return f.hsetErr
	}
	f.hashes[key] = values
	return nil
}

func (f *fakeRedis) HGetAll(_ context.Context, key string) (map[string]string, error) {
	return nil, nil
}

func (f *fakeRedis) Expire(_ context.Context, key string, ttl time.Duration) error {
	f.ttls[key] = ttl
	return nil
}

func (f *fakeRedis) Delete(_ context.Context, keys ...string) error {
	f.deleted = append(f.deleted, keys...)
	return nil
}

func (f *fakeRedis) Ping(context.Context) error { return nil }
func (f *fakeRedis) Close() error               { return nil }

func TestSaveProgress(t *testing.T) {
	client := newFakeRedis()
	repo := New(log.NewNop(), client, "inspora:page:", time.Hour)

	at := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
	require.NoError(t, repo.SaveProgress(context.Background(), project.Progress{
		ProjectID: "42", Width: "42%", Label: "42%", UpdatedAt: at,
	}))

	assert.Equal(t, map[string]any{
		"width":      "42%",
		"label":      "42%",
		"updated_at": "2026-05-06T07:08:09Z",
	}, client.hashes["inspora:page:project:42"])
	assert.Equal(t, time.Hour, client.ttls["inspora:page:project:42"])
}

func TestSaveProgressWithoutTTL(t *testing.T) {
	client := newFakeRedis()
	repo := New(log.NewNop(), client, "", 0)

	require.NoError(t, repo.SaveProgress(context.Background(), project.Progress{ProjectID: "1"}))
	assert.Contains(t, client.hashes, "project:1")
	assert.Empty(t, client.ttls)
}

func TestSaveProgressError(t *testing.T) {
	client := newFakeRedis()
	client.hsetErr = errors.New("boom")
	repo := New(log.NewNop(), client, "p:", time.Minute)

	assert.Error(t, repo.SaveProgress(context.Background(), project.Progress{ProjectID: "1"}))
	assert.Empty(t, client.ttls)
}

func TestDeleteProgress(t *testing.T) {
	client := newFakeRedis()
	repo := New(log.NewNop(), client, "p:", time.Minute)

	require.NoError(t, repo.DeleteProgress(context.Background(), "9"))
	assert.Equal(t, []string{"p:project:9"}, client.deleted)
}
