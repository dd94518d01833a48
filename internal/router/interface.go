package router

import (
	"context"

	"realtime-client/internal/channel"
)

// Handler consumes one routed message. It runs on the event loop.
type Handler func(ctx context.Context, key channel.Key, msg InboundMessage)

//go:generate mockery --name UseCase
type UseCase interface {
	// Handle registers h for kind on channels of the given scope. A later
	// registration for the same pair replaces the earlier one.
	Handle(scope channel.Kind, kind Kind, h Handler)

	Decode(frame []byte) (InboundMessage, error)
	// Route hands msg to its handler and reports whether one was found.
	Route(ctx context.Context, key channel.Key, msg InboundMessage) bool
	// Dispatch decodes and routes one raw frame. Decode failures are logged
	// and dropped. It satisfies channel.FrameHandler.
	Dispatch(key channel.Key, frame []byte)

	Stats() Stats
}
