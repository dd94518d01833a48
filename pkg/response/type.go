package response

import "realtime-client/pkg/errors"

// Resp is the envelope of every control server answer.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorMapping translates domain errors into HTTP errors.
type ErrorMapping map[error]*errors.HTTPError
