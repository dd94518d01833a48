package project

import "errors"

var (
	ErrProjectNotRendered = errors.New("project: not rendered")
	ErrNoIndicator        = errors.New("project: no progress indicator")
	ErrNoProgress         = errors.New("project: update has no progress")
)
