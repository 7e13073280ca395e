package projection

import (
	"context"

	"qa-board-sync/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ProcessIssueChanged re-derives the issue's QA status from the
	// event's label list and upserts the local projection. A project
	// with no saved mapping is skipped silently. Idempotent: the row is
	// keyed by (projectID, issueIID).
	ProcessIssueChanged(ctx context.Context, event model.IssueChangedEvent) error

	// ProcessCommentAdded creates a notification for the projection's
	// owning user. An issue with no projection is skipped silently — a
	// notification is never created for an untracked issue.
	ProcessCommentAdded(ctx context.Context, event model.CommentAddedEvent) error
}
