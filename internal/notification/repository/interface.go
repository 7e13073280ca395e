package repository

import (
	"context"

	"qa-board-sync/internal/model"
)

// Repository defines data access for notifications.
type Repository interface {
	Create(ctx context.Context, n model.Notification) error
	ListByUser(ctx context.Context, userID string) ([]model.Notification, error)
}
