package model

import "time"

// NotificationType classifies what a notification is about.
type NotificationType string

const (
	// NotificationTypeComment is a new comment on a tracked issue.
	NotificationTypeComment NotificationType = "issue_comment"
	// NotificationTypeBoardError reports a failed board transition
	// after the optimistic state was rolled back.
	NotificationTypeBoardError NotificationType = "board_error"
)

// Notification is a message addressed to exactly one user.
// Immutable once created except for the read flag.
type Notification struct {
	ID          string
	UserID      string
	Type        NotificationType
	Title       string
	Message     string
	ResourceRef string // deep link back to the external issue
	Read        bool
	CreatedAt   time.Time
}
