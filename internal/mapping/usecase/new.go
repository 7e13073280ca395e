package usecase

import (
	"qa-board-sync/internal/mapping"
	"qa-board-sync/internal/mapping/repository"
	"qa-board-sync/pkg/log"
)

// implUseCase is the private implementation of mapping.UseCase.
type implUseCase struct {
	repo  repository.Repository
	cache mapping.CacheInvalidator
	l     log.Logger
}

// New creates a new mapping UseCase implementation.
func New(repo repository.Repository, cache mapping.CacheInvalidator, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		cache: cache,
		l:     l,
	}
}
