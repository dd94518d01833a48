package page

// Well-known region names.
const (
	RegionMain     = "main"
	RegionMessages = "messages"
	RegionToasts   = "toast-container"
)

// PositionBottomEnd is the fixed corner toasts stack into.
const PositionBottomEnd = "bottom-end"

// Element is one rendered node inside a region.
type Element struct {
	ID          string `json:"id"`
	Class       string `json:"class"`
	Role        string `json:"role,omitempty"`
	Text        string `json:"text"`
	Dismissible bool   `json:"dismissible"`
}

// ProgressView is the rendered progress indicator of a project.
type ProgressView struct {
	ProjectID string `json:"project_id"`
	HasBar    bool   `json:"has_bar"`
	Width     string `json:"width"`
	Label     string `json:"label"`
}

// RegionSnapshot is a point-in-time copy of a region.
type RegionSnapshot struct {
	Name     string    `json:"name"`
	Position string    `json:"position,omitempty"`
	Elements []Element `json:"elements"`
}

// Snapshot is a point-in-time copy of the document.
type Snapshot struct {
	Regions  []RegionSnapshot `json:"regions"`
	Projects []ProgressView   `json:"projects"`
}
