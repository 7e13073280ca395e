package http

import (
	"qa-board-sync/internal/board"
	"qa-board-sync/pkg/log"
)

type handler struct {
	l  log.Logger
	uc board.UseCase
}

// New creates a new HTTP handler for the board domain.
func New(l log.Logger, uc board.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
