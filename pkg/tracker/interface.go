package tracker

import "context"

// ITracker is the outbound interface to the external issue tracker.
type ITracker interface {
	// ListProjectIssues returns open issues for a project, most recently
	// updated first (the tracker's default listing order).
	ListProjectIssues(ctx context.Context, projectID int) ([]Issue, error)

	// GetIssue fetches a single issue by its project-scoped iid.
	GetIssue(ctx context.Context, projectID, issueIID int) (*Issue, error)

	// UpdateIssueLabels adds and removes labels in one request.
	// The pair is sent together but is not atomic on the tracker side.
	UpdateIssueLabels(ctx context.Context, projectID, issueIID int, add, remove []string) error

	// IssueURL returns the user-facing URL of an issue.
	IssueURL(projectID, issueIID int) string
}
