package app

import (
	"realtime-client/internal/autosave"
	"realtime-client/internal/channel"
	"realtime-client/internal/notification"
	"realtime-client/internal/project"
	"realtime-client/internal/router"
	"realtime-client/pkg/loop"
)

// Status is a point-in-time view of every component.
type Status struct {
	Loop          loop.Stats         `json:"loop"`
	Channels      channel.Stats      `json:"channels"`
	Router        router.Stats       `json:"router"`
	Notifications notification.Stats `json:"notifications"`
	Projects      project.Stats      `json:"projects"`
	AutoSave      *autosave.Stats    `json:"autosave,omitempty"`
}
