package activity

import "time"

// ActivityType represents the type of activity event
type ActivityType string

const (
	TypeProjectCreated       ActivityType = "project_created"
	TypeProjectReplaced      ActivityType = "project_replaced"
	TypeProjectDeleted       ActivityType = "project_deleted"
	TypePresentationCreated  ActivityType = "presentation_created"
	TypePresentationReplaced ActivityType = "presentation_replaced"
	TypePresentationDeleted  ActivityType = "presentation_deleted"
	TypeAdminLogin           ActivityType = "admin_login"
	TypeAdminLoginFailed     ActivityType = "admin_login_failed"
	TypeAdminLockedOut       ActivityType = "admin_locked_out"
	TypeAdminLogout          ActivityType = "admin_logout"
)

// ActivityEntry represents an event in the activity log
type ActivityEntry struct {
	ID           string       `json:"id"`
	ActivityType ActivityType `json:"type"`
	SubjectID    string       `json:"subject_id,omitempty"`
	Actor        string       `json:"actor,omitempty"`
	Summary      string       `json:"summary"`
	CreatedAt    time.Time    `json:"created_at"`
}
