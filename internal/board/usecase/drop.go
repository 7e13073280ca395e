package usecase

import (
	"context"
	"time"

	"qa-board-sync/internal/board"
	"qa-board-sync/internal/mapping"
	"qa-board-sync/internal/model"
	"qa-board-sync/pkg/tracker"
)

// HandleDrop runs the optimistic three-phase drop: apply the edited
// sequence immediately, attempt the label transition in the background,
// and roll back to the exact pre-drop snapshot when the attempt fails.
// The calling thread is never blocked on the tracker.
func (uc *implUseCase) HandleDrop(ctx context.Context, input board.HandleDropInput) (board.HandleDropOutput, error) {
	if (input.TargetIssueIID == 0) == (input.TargetColumnID == "") {
		return board.HandleDropOutput{}, board.ErrBadDropTarget
	}

	st, err := uc.loadState(ctx, input.ProjectID)
	if err != nil {
		return board.HandleDropOutput{}, err
	}

	mapOut, err := uc.mappingUC.Get(ctx, input.ProjectID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.HandleDrop Get mapping: %v", err)
		return board.HandleDropOutput{}, err
	}
	cols := mapOut.Mapping.Columns

	st.mu.Lock()
	defer st.mu.Unlock()

	activeIdx := st.indexOf(input.ActiveIssueIID)
	if activeIdx < 0 {
		return board.HandleDropOutput{}, board.ErrIssueNotOnBoard
	}
	active := st.issues[activeIdx]

	srcCol, ok := mapping.Resolve(cols, active.Labels)
	if !ok {
		return board.HandleDropOutput{Outcome: board.DropOutcomeNoop}, nil
	}

	var destCol model.Column
	targetIdx := -1
	if input.TargetIssueIID != 0 {
		targetIdx = st.indexOf(input.TargetIssueIID)
		if targetIdx < 0 {
			return board.HandleDropOutput{Outcome: board.DropOutcomeNoop}, nil
		}
		destCol, ok = mapping.Resolve(cols, st.issues[targetIdx].Labels)
		if !ok {
			return board.HandleDropOutput{Outcome: board.DropOutcomeNoop}, nil
		}
	} else {
		destCol, ok = findColumn(cols, input.TargetColumnID)
		if !ok {
			return board.HandleDropOutput{Outcome: board.DropOutcomeNoop}, nil
		}
	}

	// Dropped within its own column: pure local reorder, the label set
	// is already correct and the tracker must not see a from==to swap.
	// A column-space drop lands the card at the top.
	if srcCol.ID == destCol.ID {
		if targetIdx >= 0 {
			st.moveTo(activeIdx, targetIdx)
		} else {
			st.moveTo(activeIdx, 0)
		}
		return board.HandleDropOutput{Outcome: board.DropOutcomeReordered}, nil
	}

	snapshot := st.snapshot()

	// Optimistic next state: pull the card out, stamp it so the
	// recency sort does not eject it before the next refresh, swap the
	// status label and reinsert.
	stamped := st.removeAt(activeIdx)
	stamped.UpdatedAt = time.Now()
	stamped.Labels = swapLabel(stamped.Labels, srcCol.Label, destCol.Label)

	insertAt := 0
	if targetIdx >= 0 {
		insertAt = targetIdx
		if activeIdx < targetIdx {
			// removal shifted everything after the active card left
			insertAt--
		}
	}
	st.insertAt(stamped, insertAt)

	uc.inflight.Add(1)
	go uc.attempt(input, st, snapshot, srcCol.Label, destCol.Label)

	return board.HandleDropOutput{
		Outcome:  board.DropOutcomeMoved,
		OldLabel: srcCol.Label,
		NewLabel: destCol.Label,
	}, nil
}

// attempt is the remote phase of the drop transaction. It runs detached
// from the request context; the gateway bounds the call with its own
// timeout. On failure the pre-drop sequence is restored wholesale and
// the error is surfaced to the acting user. On success nothing else
// happens here — the confirming update arrives via the webhook pipeline.
func (uc *implUseCase) attempt(input board.HandleDropInput, st *projectState, snapshot []tracker.Issue, oldLabel, newLabel string) {
	defer uc.inflight.Done()
	ctx := context.Background()

	err := uc.gateway.Transition(ctx, input.ProjectID, input.ActiveIssueIID, oldLabel, newLabel)
	if err == nil {
		return
	}

	st.mu.Lock()
	st.issues = snapshot
	st.mu.Unlock()

	uc.l.Warnf(ctx, "uc.attempt reverted drop project=%d issue=%d: %v",
		input.ProjectID, input.ActiveIssueIID, err)

	if uc.notifier != nil && input.UserID != "" {
		uc.notifier.BoardError(ctx, input.UserID, err.Error(),
			uc.tracker.IssueURL(input.ProjectID, input.ActiveIssueIID))
	}
}

func findColumn(cols []model.Column, id string) (model.Column, bool) {
	for _, c := range cols {
		if c.ID == id {
			return c, true
		}
	}
	return model.Column{}, false
}
