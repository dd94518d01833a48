package discord

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"realtime-client/pkg/log"
)

// Config configures the webhook client. Zero values take the defaults;
// a negative RetryCount disables retries.
type Config struct {
	WebhookURL string
	Timeout    time.Duration
	RetryCount int
	RetryDelay time.Duration
	Username   string
}

type discordImpl struct {
	l        log.Logger
	url      string
	username string
	retries  int
	delay    time.Duration
	client   *http.Client
	limiter  *rate.Limiter
}

type EmbedField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

type WebhookPayload struct {
	Content  string  `json:"content,omitempty"`
	Username string  `json:"username,omitempty"`
	Embeds   []Embed `json:"embeds,omitempty"`
}

// statusError is a non-2xx webhook answer.
type statusError struct {
	code       int
	body       string
	retryAfter time.Duration
}
