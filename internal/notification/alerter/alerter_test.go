package alerter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realtime-client/pkg/discord"
	"realtime-client/pkg/log"
)

func TestDiscordAlerterSendsTitleAndText(t *testing.T) {
	var payload discord.WebhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	d, err := discord.New(log.NewNop(), discord.Config{WebhookURL: srv.URL + "/api/webhooks/1/t"})
	require.NoError(t, err)

	require.NoError(t, NewDiscord(d).Alert(context.Background(), "Inspora", "Task done"))
	require.Len(t, payload.Embeds, 1)
	assert.Equal(t, "Inspora", payload.Embeds[0].Title)
	assert.Equal(t, "Task done", payload.Embeds[0].Description)
}

func TestLogAlerterNeverFails(t *testing.T) {
	assert.NoError(t, NewLog(log.NewNop()).Alert(context.Background(), "Inspora", "hello"))
}
