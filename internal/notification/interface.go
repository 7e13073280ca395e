package notification

import (
	"context"

	"qa-board-sync/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Notify persists the notification and fans it out to the owning
	// user's open push connections.
	Notify(ctx context.Context, n model.Notification) error

	// BoardError surfaces a failed board transition to the acting user.
	// It is push-only: board errors are transient and not persisted.
	BoardError(ctx context.Context, userID, message, resourceRef string)

	// List returns a user's stored notifications, newest first.
	List(ctx context.Context, userID string) ([]model.Notification, error)
}
