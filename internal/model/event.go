package model

import "time"

// WebhookEventKind distinguishes the two recognized inbound event kinds.
type WebhookEventKind string

const (
	EventKindIssueChanged WebhookEventKind = "issue_changed"
	EventKindCommentAdded WebhookEventKind = "comment_added"
)

// IssueChangedEvent is the parsed payload of a tracker issue hook.
type IssueChangedEvent struct {
	ProjectID   int
	IssueIID    int
	Title       string
	Description string
	Labels      []string
	ReceivedAt  time.Time
}

// CommentAddedEvent is the parsed payload of a tracker note hook.
type CommentAddedEvent struct {
	ProjectID  int
	IssueIID   int
	Note       string
	ReceivedAt time.Time
}
