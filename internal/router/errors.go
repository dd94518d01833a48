package router

import "errors"

// ErrMalformedFrame is returned when a frame is not a JSON object with a
// non-empty string "type".
var ErrMalformedFrame = errors.New("router: malformed frame")
