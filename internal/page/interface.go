package page

// Document is the client's rendered page: named regions holding elements, and
// project subtrees holding a progress indicator. It is mutated by the
// notification presenter, the project synchronizer and toasts.
type Document interface {
	HasRegion(name string) bool
	// EnsureRegion creates the region if missing and reports whether it did.
	EnsureRegion(name, position string) bool
	Prepend(region string, el Element) error
	Append(region string, el Element) error
	// Remove deletes the element with the given id. Removing an absent
	// element is a no-op that reports false.
	Remove(elementID string) bool
	Element(elementID string) (Element, bool)

	AddProject(projectID string, withBar bool) bool
	RemoveProject(projectID string) bool
	ProjectIDs() []string
	Progress(projectID string) (ProgressView, bool)
	// SetProgress overwrites the width and label of the project's progress
	// indicator. It reports false if the project or its indicator is absent.
	SetProgress(projectID, width, label string) bool

	Snapshot() Snapshot
}
