package model

import "time"

// QAStatus is the projected workflow status derived from labels.
type QAStatus string

const (
	QAStatusPending QAStatus = "pending"
	QAStatusPassed  QAStatus = "passed"
	QAStatusFailed  QAStatus = "failed"
)

// LocalProjection is the cached, derived QA view of one external issue,
// keyed by (ProjectID, IssueIID). It is never authoritative for label
// membership; it exists for fast reads and notification routing, and is
// always re-derivable from the tracker's label set.
type LocalProjection struct {
	ProjectID   int
	IssueIID    int
	Status      QAStatus // empty when no status label matched
	Title       string
	Description string
	UserID      string // owning user, recorded for notification routing
	UpdatedAt   time.Time
}
