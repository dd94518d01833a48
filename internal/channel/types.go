package channel

import (
	"fmt"
	"strings"
)

// Kind is the class of a channel.
type Kind string

const (
	KindNotifications Kind = "notifications"
	KindProject       Kind = "project"
)

// Key identifies a channel. The zero ProjectID is reserved for the
// notifications channel.
type Key struct {
	Kind      Kind
	ProjectID string
}

// NotificationKey is the key of the single global notification channel.
var NotificationKey = Key{Kind: KindNotifications}

// ProjectKey returns the key of a project channel.
func ProjectKey(projectID string) Key {
	return Key{Kind: KindProject, ProjectID: projectID}
}

func (k Key) String() string {
	if k.Kind == KindProject {
		return fmt.Sprintf("%s:%s", k.Kind, k.ProjectID)
	}
	return string(k.Kind)
}

// ParseKey is the inverse of Key.String.
func ParseKey(s string) (Key, error) {
	if s == string(KindNotifications) {
		return NotificationKey, nil
	}
	id, ok := strings.CutPrefix(s, string(KindProject)+":")
	if !ok || id == "" {
		return Key{}, ErrInvalidKey
	}
	return ProjectKey(id), nil
}

// State is the lifecycle state of one transport session.
type State string

const (
	StateConnecting State = "connecting"
	StateOpen       State = "open"
	StateClosed     State = "closed"
)

// Info describes a tracked channel.
type Info struct {
	Key       string `json:"key"`
	URL       string `json:"url"`
	State     State  `json:"state"`
	Sessions  int64  `json:"sessions"`
	Frames    int64  `json:"frames"`
	LastError string `json:"last_error,omitempty"`
}

// Stats aggregates all tracked channels.
type Stats struct {
	Channels   int   `json:"channels"`
	Open       int   `json:"open"`
	Connecting int   `json:"connecting"`
	Closed     int   `json:"closed"`
	Sessions   int64 `json:"sessions"`
	Closes     int64 `json:"closes"`
	Frames     int64 `json:"frames"`
}
