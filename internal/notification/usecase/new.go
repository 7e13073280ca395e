package usecase

import (
	"qa-board-sync/internal/notification"
	"qa-board-sync/internal/notification/repository"
	"qa-board-sync/pkg/log"
)

// implUseCase is the private implementation of notification.UseCase.
type implUseCase struct {
	repo repository.Repository
	hub  *notification.Hub
	l    log.Logger
}

// New creates a new notification UseCase implementation.
func New(repo repository.Repository, hub *notification.Hub, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		hub:  hub,
		l:    l,
	}
}
