package channel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realtime-client/internal/channel"
	"realtime-client/internal/page"
	projectUC "realtime-client/internal/project/usecase"
	routerUC "realtime-client/internal/router/usecase"
	"realtime-client/pkg/log"
)

func setup(t *testing.T) (page.Document, func(key channel.Key, frame string)) {
	t.Helper()
	doc := page.NewMemory(page.RegionMain)
	doc.AddProject("42", true)
	doc.AddProject("7", true)

	uc, err := projectUC.New(log.NewNop(), projectUC.Config{Document: doc})
	require.NoError(t, err)

	r := routerUC.New(log.NewNop())
	Register(log.NewNop(), r, uc)
	return doc, func(key channel.Key, frame string) { r.Dispatch(key, []byte(frame)) }
}

func TestProjectMessageUpdatesProgress(t *testing.T) {
	doc, dispatch := setup(t)

	dispatch(channel.ProjectKey("42"), `{"type":"project_message","project_id":42,"progress":42}`)

	view, ok := doc.Progress("42")
	require.True(t, ok)
	assert.Equal(t, "42%", view.Label)
	assert.Equal(t, "42%", view.Width)
}

func TestProjectMessageInOrderLastWins(t *testing.T) {
	doc, dispatch := setup(t)

	dispatch(channel.ProjectKey("42"), `{"type":"project_message","progress":10}`)
	dispatch(channel.ProjectKey("42"), `{"type":"project_message","progress":90}`)

	view, _ := doc.Progress("42")
	assert.Equal(t, "90%", view.Label)
}

func TestProjectMessageStringProjectID(t *testing.T) {
	doc, dispatch := setup(t)

	dispatch(channel.ProjectKey("42"), `{"type":"project_message","project_id":"7","progress":3}`)

	view, _ := doc.Progress("7")
	assert.Equal(t, "3%", view.Label)
}

func TestProjectMessageWithoutSideEffects(t *testing.T) {
	doc, dispatch := setup(t)

	for _, frame := range []string{
		`{"type":"project_message"}`,
		`{"type":"project_message","progress":"high"}`,
		`{"type":"project_message","project_id":"gone","progress":5}`,
		`{"type":"status","progress":5}`,
		`{"type":"notification","message":"x"}`,
	} {
		dispatch(channel.ProjectKey("42"), frame)
	}
	dispatch(channel.NotificationKey, `{"type":"project_message","project_id":"42","progress":5}`)

	view, _ := doc.Progress("42")
	assert.Empty(t, view.Label)
}
