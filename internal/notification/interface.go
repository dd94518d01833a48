package notification

import "context"

// Alerter raises an OS-level alert outside the page.
type Alerter interface {
	Alert(ctx context.Context, title, text string) error
}

// UseCase renders notifications and toasts. Every method runs on the event loop.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// RequestPermission asks for alert permission once, and only while the
	// permission is undetermined. It returns the resulting permission.
	RequestPermission(ctx context.Context) Permission
	Permission() Permission

	// Present inserts a dismissible element at the top of the notices region,
	// raises an OS-level alert if permitted and schedules the element's
	// removal. It returns the element id, or ErrNoRegion when the page has
	// nowhere to render it (the alert is still raised).
	Present(ctx context.Context, text, notificationID string) (string, error)
	// Toast appends a transient element to the toast region, creating the
	// region on first use.
	Toast(ctx context.Context, message string, severity Severity) string
	// Dismiss removes the element now. Dismissing twice is a no-op that
	// reports false.
	Dismiss(ctx context.Context, elementID string) bool

	Active() []Record
	Stats() Stats
}
