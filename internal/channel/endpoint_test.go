package channel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointsMirrorPageScheme(t *testing.T) {
	tests := []struct {
		name    string
		pageURL string
		key     Key
		want    string
	}{
		{"insecure notifications", "http://localhost:8000/dashboard/", NotificationKey, "ws://localhost:8000/ws/notifications/"},
		{"secure notifications", "https://app.example.com/", NotificationKey, "wss://app.example.com/ws/notifications/"},
		{"secure project", "https://app.example.com/projects/", ProjectKey("42"), "wss://app.example.com/ws/projects/42/"},
		{"project id escaped", "http://h", ProjectKey("a b"), "ws://h/ws/projects/a%20b/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEndpoints(tt.pageURL)
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.URL(tt.key))
		})
	}
}

func TestEndpointsRejectInvalidPage(t *testing.T) {
	for _, raw := range []string{"", "/relative", "ftp://host/", "://bad"} {
		_, err := NewEndpoints(raw)
		assert.ErrorIs(t, err, ErrInvalidPageURL, raw)
	}
}

func TestKeyRoundTrip(t *testing.T) {
	for _, k := range []Key{NotificationKey, ProjectKey("7")} {
		got, err := ParseKey(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseKey("project:")
	assert.ErrorIs(t, err, ErrInvalidKey)
	_, err = ParseKey("tasks:1")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestEndpointsOrigin(t *testing.T) {
	e, err := NewEndpoints("https://app.example.com:8443/x/")
	require.NoError(t, err)
	assert.Equal(t, "https://app.example.com:8443", e.Origin())

	e, err = NewEndpoints("http://localhost:8000/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", e.Origin())
}
