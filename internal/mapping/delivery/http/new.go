package http

import (
	"qa-board-sync/internal/mapping"
	"qa-board-sync/pkg/log"
)

type handler struct {
	l  log.Logger
	uc mapping.UseCase
}

// New creates a new HTTP handler for the mapping domain.
func New(l log.Logger, uc mapping.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
