package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestInitLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := Init(ZapConfig{Level: "warn", Mode: ModeProduction, Encoding: EncodingJSON, Output: &buf})

	ctx := context.Background()
	l.Info(ctx, "hidden")
	l.Warnf(ctx, "shown %d", 1)

	got := lines(t, &buf)
	require.Len(t, got, 1)
	assert.Equal(t, "shown 1", got[0][keyMessage])
	assert.Equal(t, "warn", got[0][keyLevel])
}

func TestInitUnknownLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	l := Init(ZapConfig{Level: "loud", Mode: ModeProduction, Output: &buf})

	l.Debug(context.Background(), "hidden")
	l.Info(context.Background(), "shown")
	assert.Len(t, lines(t, &buf), 1)
}

func TestWithAndContext(t *testing.T) {
	var buf bytes.Buffer
	root := Init(ZapConfig{Level: "debug", Mode: ModeProduction, Output: &buf})
	child := root.With("channel", "notifications")

	ctx := WithContext(context.Background(), child)
	root.Info(ctx, "via context")
	root.Info(context.Background(), "plain")

	got := lines(t, &buf)
	require.Len(t, got, 2)
	assert.Equal(t, "notifications", got[0]["channel"])
	assert.NotContains(t, got[1], "channel")
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	assert.NotPanics(t, func() {
		l.With("k", "v").Errorf(context.Background(), "x %d", 1)
	})
}
