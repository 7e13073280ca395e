package usecase

import (
	"context"
	"sync"

	"qa-board-sync/internal/board"
	"qa-board-sync/internal/mapping"
	"qa-board-sync/pkg/log"
	"qa-board-sync/pkg/tracker"
)

// implUseCase is the private implementation of board.UseCase.
type implUseCase struct {
	gateway   board.Gateway
	mappingUC mapping.UseCase
	tracker   tracker.ITracker
	cache     *board.ListingCache
	notifier  board.Notifier
	l         log.Logger

	mu     sync.Mutex
	states map[int]*projectState

	inflight sync.WaitGroup
}

// New creates a new board UseCase implementation.
func New(gw board.Gateway, mappingUC mapping.UseCase, trk tracker.ITracker, cache *board.ListingCache, notifier board.Notifier, l log.Logger) *implUseCase {
	return &implUseCase{
		gateway:   gw,
		mappingUC: mappingUC,
		tracker:   trk,
		cache:     cache,
		notifier:  notifier,
		l:         l,
		states:    make(map[int]*projectState),
	}
}

// Wait blocks until every in-flight transition has settled.
func (uc *implUseCase) Wait() {
	uc.inflight.Wait()
}

// loadState returns the project's board state, refetching the listing
// from the tracker when the cache entry is gone (expired or invalidated
// by the webhook pipeline or a mapping save).
func (uc *implUseCase) loadState(ctx context.Context, projectID int) (*projectState, error) {
	uc.mu.Lock()
	st, ok := uc.states[projectID]
	if !ok {
		st = &projectState{}
		uc.states[projectID] = st
	}
	uc.mu.Unlock()

	// st.issues is written by attempt's revert path, so the freshness
	// check needs the state lock too
	st.mu.Lock()
	loaded := st.issues != nil
	st.mu.Unlock()

	if _, fresh := uc.cache.Get(projectID); fresh && loaded {
		return st, nil
	}

	issues, err := uc.tracker.ListProjectIssues(ctx, projectID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.loadState ListProjectIssues project=%d: %v", projectID, err)
		return nil, err
	}

	st.mu.Lock()
	st.issues = issues
	st.mu.Unlock()
	uc.cache.Add(projectID, issues)

	return st, nil
}
