package page

import "errors"

var (
	// ErrRegionNotFound is returned when inserting into a region the page does not render.
	ErrRegionNotFound = errors.New("page: region not found")

	// ErrDuplicateElement is returned when an element id is already in use.
	ErrDuplicateElement = errors.New("page: duplicate element id")
)
