package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"realtime-client/internal/autosave"
	"realtime-client/internal/notification"
)

const maxResponseSize = 1 << 20

func (uc *implUseCase) Save(ctx context.Context, form autosave.Form) error {
	if uc.limiter != nil {
		if err := uc.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	target, err := uc.target(form.Action)
	if err != nil {
		uc.failed.Add(1)
		return err
	}

	values := url.Values{}
	for k, v := range form.Fields {
		values.Set(k, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(values.Encode()))
	if err != nil {
		uc.failed.Add(1)
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	if token := uc.csrfToken(ctx); token != "" {
		req.Header.Set("X-CSRFToken", token)
	}

	resp, err := uc.client.Do(req)
	if err != nil {
		uc.failed.Add(1)
		uc.l.Warnf(ctx, "internal.autosave.usecase.Save: %s: %v", form.Name, err)
		return err
	}
	defer resp.Body.Close()

	var out autosave.SaveResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&out); err != nil {
		uc.failed.Add(1)
		uc.l.Warnf(ctx, "internal.autosave.usecase.Save: %s: status %d: %v", form.Name, resp.StatusCode, err)
		return fmt.Errorf("decode response: %w", err)
	}
	if !out.Success {
		uc.rejected.Add(1)
		uc.l.Warnf(ctx, "internal.autosave.usecase.Save: %s: status %d: not saved", form.Name, resp.StatusCode)
		return autosave.ErrRejected
	}

	uc.saved.Add(1)
	uc.l.Infof(ctx, "form %s auto-saved", form.Name)
	uc.exec.Post(func() {
		uc.toaster.Toast(context.Background(), autosave.SuccessMessage, notification.SeveritySuccess)
	})
	return nil
}

func (uc *implUseCase) Stats() autosave.Stats {
	return autosave.Stats{
		Saved:    uc.saved.Load(),
		Rejected: uc.rejected.Load(),
		Failed:   uc.failed.Load(),
	}
}

// target resolves the form action against the page; empty means the page path.
func (uc *implUseCase) target(action string) (string, error) {
	if action == "" {
		u := *uc.page
		u.RawQuery = ""
		u.Fragment = ""
		return u.String(), nil
	}
	ref, err := url.Parse(action)
	if err != nil {
		return "", fmt.Errorf("%w: action %q: %v", autosave.ErrInvalidForm, action, err)
	}
	return uc.page.ResolveReference(ref).String(), nil
}
