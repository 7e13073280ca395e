package http

import (
	"time"

	"qa-board-sync/internal/notification"
	"qa-board-sync/pkg/log"
)

type handler struct {
	l         log.Logger
	uc        notification.UseCase
	hub       *notification.Hub
	heartbeat time.Duration
}

// New creates a new HTTP handler for the notification domain.
func New(l log.Logger, uc notification.UseCase, hub *notification.Hub, heartbeat time.Duration) *handler {
	if heartbeat <= 0 {
		heartbeat = 30 * time.Second
	}
	return &handler{
		l:         l,
		uc:        uc,
		hub:       hub,
		heartbeat: heartbeat,
	}
}
