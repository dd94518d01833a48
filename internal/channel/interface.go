package channel

import "context"

// Conn is one established transport session.
type Conn interface {
	// ReadMessage blocks for the next frame. Any error ends the session.
	ReadMessage() ([]byte, error)
	// Send queues v to be written as a JSON frame.
	Send(v any) error
	Close() error
}

// Dialer establishes transport sessions.
type Dialer interface {
	Dial(ctx context.Context, url string) (Conn, error)
}

// FrameHandler receives every frame read from an open channel.
type FrameHandler func(key Key, frame []byte)

// Registry owns the set of live channels, one Connection per Key.
// All methods must be called on the event loop.
type Registry interface {
	// EnsureNotificationChannel opens the notifications channel if push
	// transport is supported and it is not tracked yet.
	EnsureNotificationChannel() bool
	// EnsureProjectChannels opens a channel for every project id not yet
	// tracked and returns how many were created.
	EnsureProjectChannels(projectIDs []string) int
	// Release closes the channel, cancels its pending reconnect and stops
	// tracking it.
	Release(key Key) bool

	State(key Key) (State, bool)
	Channels() []Info
	Stats() Stats

	// Close releases every channel.
	Close()
}
