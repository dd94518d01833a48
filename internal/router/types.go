package router

import "encoding/json"

// Kind is the "type" discriminator of an inbound frame.
type Kind string

const (
	KindNotification   Kind = "notification"
	KindProjectMessage Kind = "project_message"
)

// InboundMessage is a decoded frame. Payload is the whole frame; only the
// handler registered for Kind interprets it.
type InboundMessage struct {
	Kind    Kind
	Payload json.RawMessage
}

// Stats counts frames by outcome.
type Stats struct {
	Decoded  int64 `json:"decoded"`
	Dropped  int64 `json:"dropped"`
	Routed   int64 `json:"routed"`
	Unrouted int64 `json:"unrouted"`
}
