package board

import (
	"qa-board-sync/internal/model"
	"qa-board-sync/pkg/tracker"
)

// --- UseCase Inputs ---

// HandleDropInput describes one drag-and-drop gesture. Exactly one of
// TargetIssueIID and TargetColumnID must be set: a card was dropped
// either onto another card or onto a column's empty space.
type HandleDropInput struct {
	ProjectID      int
	UserID         string // acting user, receives the error on a failed transition
	ActiveIssueIID int
	TargetIssueIID int    // 0 when the drop target is a column
	TargetColumnID string // empty when the drop target is a card
}

// --- UseCase Outputs ---

// DropOutcome says what the drop resolved to.
type DropOutcome string

const (
	// DropOutcomeNoop — source or destination column could not be resolved.
	DropOutcomeNoop DropOutcome = "noop"
	// DropOutcomeReordered — same-column reorder, no tracker call.
	DropOutcomeReordered DropOutcome = "reordered"
	// DropOutcomeMoved — cross-column move applied optimistically; the
	// label transition is in flight when this is returned.
	DropOutcomeMoved DropOutcome = "moved"
)

type HandleDropOutput struct {
	Outcome  DropOutcome
	OldLabel string // set for moved
	NewLabel string // set for moved
}

// BoardColumn is one rendered column of the grouped board view.
type BoardColumn struct {
	Column model.Column
	Issues []tracker.Issue
}

type BoardOutput struct {
	Columns []BoardColumn
	// Unmatched holds issues carrying none of the mapped labels.
	Unmatched []tracker.Issue
}
