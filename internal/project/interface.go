package project

import (
	"context"

	"realtime-client/internal/channel"
)

// UseCase applies project updates to the page. Every method runs on the
// event loop.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Apply overwrites the progress indicator of the target project. The
	// target is u.ProjectID, or the channel's project when that is empty.
	// It returns ErrProjectNotRendered, ErrNoIndicator or ErrNoProgress
	// when nothing changed.
	Apply(ctx context.Context, key channel.Key, u Update) (Progress, error)
	// Forget drops the mirrored progress of a project leaving the page.
	// Mirror writes are applied in call order, so a Forget is never undone
	// by an earlier Apply.
	Forget(ctx context.Context, projectID string)

	Stats() Stats
	// Close waits for queued mirror writes. It is called once, off the loop,
	// at shutdown.
	Close(ctx context.Context) error
}

// Repository mirrors applied progress outside the process.
//
//go:generate mockery --name Repository
type Repository interface {
	SaveProgress(ctx context.Context, p Progress) error
	DeleteProgress(ctx context.Context, projectID string) error
}
