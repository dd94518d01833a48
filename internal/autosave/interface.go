package autosave

import "context"

// UseCase posts forms back to the server. It is called off the event loop.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Save(ctx context.Context, form Form) error
	Stats() Stats
}
