package project

import (
	"strconv"
	"time"
)

// Update is the decoded content of a "project_message" frame.
type Update struct {
	// ProjectID is the payload's project_id, empty when absent.
	ProjectID string
	// Progress is nil when the frame carries no progress.
	Progress *float64
}

// Progress is one applied progress value.
type Progress struct {
	ProjectID string    `json:"project_id"`
	Width     string    `json:"width"`
	Label     string    `json:"label"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Percent formats v the way the progress indicator shows it: 42 → "42%",
// 42.5 → "42.5%".
func Percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// Stats counts synchronizer outcomes.
type Stats struct {
	Applied  int64 `json:"applied"`
	Skipped  int64 `json:"skipped"`
	Mirrored int64 `json:"mirrored"`
}
