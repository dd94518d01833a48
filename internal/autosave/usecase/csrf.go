package usecase

import (
	"context"
	"io"
	"net/http"
	"strings"

	"golang.org/x/net/html"
)

const (
	csrfMetaName   = "csrf-token"
	csrfCookieName = "csrftoken"
)

// csrfToken returns the page's csrf-token meta content, falling back to the
// csrftoken cookie. The meta token is fetched once and cached.
func (uc *implUseCase) csrfToken(ctx context.Context) string {
	uc.mu.Lock()
	token := uc.metaToken
	uc.mu.Unlock()
	if token != "" {
		return token
	}

	token, err := uc.fetchMetaToken(ctx)
	if err != nil {
		uc.l.Debugf(ctx, "internal.autosave.usecase.csrfToken.fetchMetaToken: %v", err)
	}
	if token != "" {
		uc.mu.Lock()
		uc.metaToken = token
		uc.mu.Unlock()
		return token
	}

	if uc.client.Jar != nil {
		for _, c := range uc.client.Jar.Cookies(uc.page) {
			if c.Name == csrfCookieName {
				return c.Value
			}
		}
	}
	return ""
}

// fetchMetaToken loads the page. The request also lets the server set its
// CSRF cookie in the jar.
func (uc *implUseCase) fetchMetaToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uc.page.String(), nil)
	if err != nil {
		return "", err
	}
	resp, err := uc.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK || !strings.Contains(resp.Header.Get("Content-Type"), "html") {
		io.Copy(io.Discard, resp.Body)
		return "", nil
	}
	return metaContent(resp.Body, csrfMetaName)
}

// metaContent returns the content of the first <meta name=name>.
func metaContent(r io.Reader, name string) (string, error) {
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return "", nil
			}
			return "", z.Err()
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.Data != "meta" {
				continue
			}
			var metaName, content string
			for _, a := range tok.Attr {
				switch a.Key {
				case "name":
					metaName = a.Val
				case "content":
					content = a.Val
				}
			}
			if metaName == name {
				return content, nil
			}
		}
	}
}
