package notification

import "errors"

var (
	ErrInvalidPermission = errors.New("notification: invalid permission")
	ErrNoRegion          = errors.New("notification: no region to render into")
)
