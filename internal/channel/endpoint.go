package channel

import (
	"fmt"
	"net/url"
)

// Endpoints builds channel URLs from the page URL. The transport is secure
// iff the page was loaded securely.
type Endpoints struct {
	scheme string
	host   string
}

// NewEndpoints derives endpoints from pageURL.
func NewEndpoints(pageURL string) (Endpoints, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return Endpoints{}, fmt.Errorf("%w: %v", ErrInvalidPageURL, err)
	}
	if u.Host == "" {
		return Endpoints{}, ErrInvalidPageURL
	}

	var scheme string
	switch u.Scheme {
	case "https", "wss":
		scheme = "wss"
	case "http", "ws":
		scheme = "ws"
	default:
		return Endpoints{}, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidPageURL, u.Scheme)
	}
	return Endpoints{scheme: scheme, host: u.Host}, nil
}

// URL returns the endpoint of key.
func (e Endpoints) URL(key Key) string {
	u := url.URL{Scheme: e.scheme, Host: e.host}
	switch key.Kind {
	case KindProject:
		u.Path = "/ws/projects/" + key.ProjectID + "/"
		u.RawPath = "/ws/projects/" + url.PathEscape(key.ProjectID) + "/"
	default:
		u.Path = "/ws/notifications/"
	}
	return u.String()
}

// Origin is the page origin, sent with every handshake.
func (e Endpoints) Origin() string {
	scheme := "http"
	if e.scheme == "wss" {
		scheme = "https"
	}
	return scheme + "://" + e.host
}
