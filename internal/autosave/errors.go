package autosave

import "errors"

var (
	// ErrRejected is returned when the server answers without success.
	ErrRejected = errors.New("autosave: rejected by server")
	// ErrInvalidForm is returned when a form file cannot be used.
	ErrInvalidForm = errors.New("autosave: invalid form")
)
