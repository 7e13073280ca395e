package usecase

import (
	"qa-board-sync/internal/mapping"
	"qa-board-sync/internal/notification"
	"qa-board-sync/internal/projection/repository"
	"qa-board-sync/pkg/log"
	"qa-board-sync/pkg/tracker"
)

// implUseCase is the private implementation of projection.UseCase.
type implUseCase struct {
	repo           repository.Repository
	mappingUC      mapping.UseCase
	notificationUC notification.UseCase
	tracker        tracker.ITracker
	cache          mapping.CacheInvalidator
	l              log.Logger
}

// New creates a new projection UseCase implementation.
func New(
	repo repository.Repository,
	mappingUC mapping.UseCase,
	notificationUC notification.UseCase,
	trk tracker.ITracker,
	cache mapping.CacheInvalidator,
	l log.Logger,
) *implUseCase {
	return &implUseCase{
		repo:           repo,
		mappingUC:      mappingUC,
		notificationUC: notificationUC,
		tracker:        trk,
		cache:          cache,
		l:              l,
	}
}
