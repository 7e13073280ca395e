package board

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Board returns the project's issues grouped into mapped columns,
	// most recently updated first within each column.
	Board(ctx context.Context, projectID int) (BoardOutput, error)

	// HandleDrop applies a drag gesture optimistically and kicks off the
	// label transition. It returns as soon as the optimistic state is
	// applied; a failed transition reverts asynchronously.
	HandleDrop(ctx context.Context, input HandleDropInput) (HandleDropOutput, error)

	// Wait blocks until all in-flight transitions have settled.
	Wait()
}

// Gateway is the only writer of external label state. A status change is
// one remove+add pair, sent together but not atomic on the tracker side.
type Gateway interface {
	Transition(ctx context.Context, projectID, issueIID int, fromLabel, toLabel string) error
}

// Notifier surfaces a failed transition to the acting user after the
// optimistic state has been rolled back.
type Notifier interface {
	BoardError(ctx context.Context, userID, message, resourceRef string)
}
