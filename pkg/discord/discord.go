package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/time/rate"

	"realtime-client/pkg/log"
)

func newImpl(l log.Logger, cfg Config) *discordImpl {
	if l == nil {
		l = log.NewNop()
	}
	d := &discordImpl{
		l:        l,
		url:      strings.TrimSpace(cfg.WebhookURL),
		username: cfg.Username,
		retries:  cfg.RetryCount,
		delay:    cfg.RetryDelay,
		client:   &http.Client{Timeout: cfg.Timeout},
		limiter:  rate.NewLimiter(rate.Every(DefaultInterval), DefaultBurst),
	}
	if d.client.Timeout <= 0 {
		d.client.Timeout = DefaultTimeout
	}
	if d.retries == 0 {
		d.retries = DefaultRetryCount
	} else if d.retries < 0 {
		d.retries = 0
	}
	if d.delay <= 0 {
		d.delay = DefaultRetryDelay
	}
	if d.username == "" {
		d.username = DefaultUsername
	}
	return d
}

func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	if n := utf8.RuneCountInString(content); n > MaxMessageLength {
		return fmt.Errorf("discord: message too long: %d characters (max %d)", n, MaxMessageLength)
	}
	return d.post(ctx, WebhookPayload{Content: content, Username: d.username})
}

func (d *discordImpl) SendInfo(ctx context.Context, title, description string) error {
	return d.post(ctx, d.embed(ColorInfo, title, description, nil))
}

func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	var fields []EmbedField
	if err != nil {
		fields = append(fields, EmbedField{Name: "Error", Value: truncate(err.Error(), MaxFieldValueLen)})
	}
	return d.post(ctx, d.embed(ColorError, title, description, fields))
}

func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

func (d *discordImpl) embed(color int, title, description string, fields []EmbedField) WebhookPayload {
	return WebhookPayload{
		Username: d.username,
		Embeds: []Embed{{
			Title:       truncate(title, MaxTitleLen),
			Description: truncate(description, MaxDescriptionLen),
			Color:       color,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
			Fields:      fields,
		}},
	}
}

// post sends payload, retrying on transport errors, 429 and 5xx answers.
// A 429 waits for the server's Retry-After when it is longer than the delay.
func (d *discordImpl) post(ctx context.Context, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: marshal payload: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= d.retries; attempt++ {
		if attempt > 0 {
			wait := d.delay
			var se *statusError
			if errors.As(lastErr, &se) && se.retryAfter > wait {
				wait = se.retryAfter
			}
			d.l.Debugf(ctx, "pkg.discord.post: retry %d/%d in %s", attempt, d.retries, wait)
			t := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				t.Stop()
				return ctx.Err()
			case <-t.C:
			}
		}
		if err := d.limiter.Wait(ctx); err != nil {
			return err
		}

		lastErr = d.do(ctx, body)
		if lastErr == nil {
			return nil
		}
		if !retryable(lastErr) {
			return lastErr
		}
		d.l.Warnf(ctx, "pkg.discord.post: attempt %d failed: %v", attempt+1, lastErr)
	}
	return fmt.Errorf("discord: failed after %d attempts: %w", d.retries+1, lastErr)
}

func (d *discordImpl) do(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("discord: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("discord: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 == 2 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	se := &statusError{code: resp.StatusCode, body: strings.TrimSpace(string(msg))}
	if secs, err := strconv.ParseFloat(resp.Header.Get("Retry-After"), 64); err == nil && secs > 0 {
		se.retryAfter = time.Duration(secs * float64(time.Second))
	}
	return se
}

func (e *statusError) Error() string {
	return fmt.Sprintf("discord webhook returned status %d: %s", e.code, e.body)
}

func retryable(err error) bool {
	var se *statusError
	if !errors.As(err, &se) {
		return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
	}
	return se.code == http.StatusTooManyRequests || se.code >= 500
}

// truncate limits s to n characters, ending cut text with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}
