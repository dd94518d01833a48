package channel

import "errors"

var (
	// ErrInvalidKey is returned when a channel key cannot be parsed.
	ErrInvalidKey = errors.New("channel: invalid key")

	// ErrInvalidPageURL is returned when the page URL has no usable scheme or host.
	ErrInvalidPageURL = errors.New("channel: invalid page url")

	// ErrConnectionClosed is returned when writing to a closed transport.
	ErrConnectionClosed = errors.New("channel: connection closed")

	// ErrSendBufferFull is returned when the transport cannot queue another frame.
	ErrSendBufferFull = errors.New("channel: send buffer full")
)
