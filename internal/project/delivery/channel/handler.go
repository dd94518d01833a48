package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"realtime-client/internal/channel"
	"realtime-client/internal/project"
	"realtime-client/internal/router"
	"realtime-client/pkg/log"
)

// projectMessage is the payload of a "project_message" frame.
type projectMessage struct {
	ProjectID json.RawMessage `json:"project_id"`
	Progress  *float64        `json:"progress"`
}

type handler struct {
	l  log.Logger
	uc project.UseCase
}

// Register routes "project_message" frames on project channels to uc.
func Register(l log.Logger, r router.UseCase, uc project.UseCase) {
	h := handler{l: l, uc: uc}
	r.Handle(channel.KindProject, router.KindProjectMessage, h.apply)
}

func (h handler) apply(ctx context.Context, key channel.Key, msg router.InboundMessage) {
	var m projectMessage
	if err := json.Unmarshal(msg.Payload, &m); err != nil {
		h.l.Warnf(ctx, "project.delivery.channel.apply: bad payload on %s: %v", key, err)
		return
	}

	_, err := h.uc.Apply(ctx, key, project.Update{
		ProjectID: idText(m.ProjectID),
		Progress:  m.Progress,
	})
	switch {
	case err == nil:
	case errors.Is(err, project.ErrProjectNotRendered),
		errors.Is(err, project.ErrNoIndicator),
		errors.Is(err, project.ErrNoProgress):
		h.l.Debugf(ctx, "project.delivery.channel.apply: %s: %v", key, err)
	default:
		h.l.Warnf(ctx, "project.delivery.channel.apply: %s: %v", key, err)
	}
}

func idText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
