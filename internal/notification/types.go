package notification

import (
	"strings"
	"time"
)

// Permission is the state of the OS-level alert permission.
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// ParsePermission validates a configured permission value.
func ParsePermission(s string) (Permission, error) {
	switch p := Permission(s); p {
	case PermissionDefault, PermissionGranted, PermissionDenied:
		return p, nil
	}
	return "", ErrInvalidPermission
}

// Severity selects the toast colour.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

const (
	// NoticeClass is the class of an in-page notification element.
	NoticeClass = "alert alert-info alert-dismissible"
	toastClass  = "toast text-white bg-"
)

// Element id prefixes.
const (
	NoticeIDPrefix = "notification-"
	ToastIDPrefix  = "toast-"
)

// IsElementID reports whether id names a notification or toast element.
func IsElementID(id string) bool {
	for _, p := range []string{NoticeIDPrefix, ToastIDPrefix} {
		if len(id) > len(p) && strings.HasPrefix(id, p) {
			return true
		}
	}
	return false
}

// ToastClass returns the element class of a toast with the given severity.
func ToastClass(s Severity) string {
	return toastClass + string(s)
}

// Record is one live in-page element owned by the presenter.
type Record struct {
	ElementID      string    `json:"element_id"`
	Text           string    `json:"text"`
	NotificationID string    `json:"notification_id,omitempty"`
	Toast          bool      `json:"toast"`
	CreatedAt      time.Time `json:"created_at"`
}

// Stats counts presenter activity.
type Stats struct {
	Presented  int64      `json:"presented"`
	Toasts     int64      `json:"toasts"`
	Alerts     int64      `json:"alerts"`
	Dismissed  int64      `json:"dismissed"`
	Expired    int64      `json:"expired"`
	Active     int        `json:"active"`
	Permission Permission `json:"permission"`
}
