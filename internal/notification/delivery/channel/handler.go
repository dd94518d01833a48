package channel

import (
	"bytes"
	"context"
	"encoding/json"

	"realtime-client/internal/channel"
	"realtime-client/internal/notification"
	"realtime-client/internal/router"
	"realtime-client/pkg/log"
)

// notificationMessage is the payload of a "notification" frame.
type notificationMessage struct {
	Message        *string         `json:"message"`
	NotificationID json.RawMessage `json:"notification_id"`
}

type handler struct {
	l  log.Logger
	uc notification.UseCase
}

// Register routes "notification" frames on the notification channel to uc.
func Register(l log.Logger, r router.UseCase, uc notification.UseCase) {
	h := handler{l: l, uc: uc}
	r.Handle(channel.KindNotifications, router.KindNotification, h.present)
}

func (h handler) present(ctx context.Context, key channel.Key, msg router.InboundMessage) {
	var m notificationMessage
	if err := json.Unmarshal(msg.Payload, &m); err != nil {
		h.l.Warnf(ctx, "notification.delivery.channel.present: bad payload on %s: %v", key, err)
		return
	}
	if m.Message == nil {
		h.l.Warnf(ctx, "notification.delivery.channel.present: payload on %s has no message", key)
		return
	}

	if _, err := h.uc.Present(ctx, *m.Message, idText(m.NotificationID)); err != nil {
		h.l.Debugf(ctx, "notification.delivery.channel.present: %v", err)
	}
}

// idText keeps a numeric or string id as its text form.
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
