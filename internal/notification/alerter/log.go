package alerter

import (
	"context"

	"realtime-client/internal/notification"
	"realtime-client/pkg/log"
)

type logAlerter struct {
	l log.Logger
}

// NewLog writes alerts to the structured log. It is the fallback when no
// webhook is configured.
func NewLog(l log.Logger) notification.Alerter {
	return &logAlerter{l: l.With("sink", "alert")}
}

func (a *logAlerter) Alert(ctx context.Context, title, text string) error {
	a.l.Infof(ctx, "[%s] %s", title, text)
	return nil
}
