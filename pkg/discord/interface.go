package discord

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"realtime-client/pkg/log"
)

var (
	errWebhookRequired = errors.New("discord: webhook url is required")
	errWebhookURL      = errors.New("discord: webhook url must be http(s)://host/api/webhooks/{id}/{token}")
)

// IDiscord posts to a Discord webhook. Every call blocks until the message
// is accepted, the retries are spent, or ctx ends.
type IDiscord interface {
	SendMessage(ctx context.Context, content string) error
	SendInfo(ctx context.Context, title, description string) error
	SendError(ctx context.Context, title, description string, err error) error
	Close() error
}

func New(l log.Logger, cfg Config) (IDiscord, error) {
	if strings.TrimSpace(cfg.WebhookURL) == "" {
		return nil, errWebhookRequired
	}
	if !validWebhookURL(cfg.WebhookURL) {
		return nil, errWebhookURL
	}
	return newImpl(l, cfg), nil
}

func validWebhookURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return false
	}
	rest, ok := strings.CutPrefix(u.Path, webhookPathPrefix)
	if !ok {
		return false
	}
	id, token, ok := strings.Cut(rest, "/")
	return ok && id != "" && token != ""
}
