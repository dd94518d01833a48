package app

import "errors"

var (
	ErrEmptyProjectID   = errors.New("app: project id is required")
	ErrAlreadyStarted   = errors.New("app: already started")
	ErrAutoSaveDisabled = errors.New("app: auto-save is disabled")
)
