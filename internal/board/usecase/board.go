package usecase

import (
	"context"
	"sort"

	"qa-board-sync/internal/board"
	"qa-board-sync/internal/mapping"
	"qa-board-sync/pkg/tracker"
)

// Board returns the grouped column view of a project.
func (uc *implUseCase) Board(ctx context.Context, projectID int) (board.BoardOutput, error) {
	st, err := uc.loadState(ctx, projectID)
	if err != nil {
		return board.BoardOutput{}, err
	}

	mapOut, err := uc.mappingUC.Get(ctx, projectID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Board Get mapping: %v", err)
		return board.BoardOutput{}, err
	}
	cols := mapOut.Mapping.Columns

	st.mu.Lock()
	issues := st.snapshot()
	st.mu.Unlock()

	ordered := make([]board.BoardColumn, len(cols))
	index := make(map[string]int, len(cols))

	displayCols := make([]int, len(cols))
	for i := range cols {
		displayCols[i] = i
	}
	sort.SliceStable(displayCols, func(a, b int) bool {
		return cols[displayCols[a]].Order < cols[displayCols[b]].Order
	})

	for pos, ci := range displayCols {
		ordered[pos] = board.BoardColumn{Column: cols[ci]}
		index[cols[ci].ID] = pos
	}

	var unmatched []tracker.Issue
	for _, issue := range issues {
		col, ok := mapping.Resolve(cols, issue.Labels)
		if !ok {
			unmatched = append(unmatched, issue)
			continue
		}
		pos := index[col.ID]
		ordered[pos].Issues = append(ordered[pos].Issues, issue)
	}

	return board.BoardOutput{Columns: ordered, Unmatched: unmatched}, nil
}
