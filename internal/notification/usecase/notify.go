package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"qa-board-sync/internal/model"
)

// Notify persists the notification, then fans it out. Persistence comes
// first so a reconnecting client can still list what it missed.
func (uc *implUseCase) Notify(ctx context.Context, n model.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	if err := uc.repo.Create(ctx, n); err != nil {
		uc.l.Errorf(ctx, "uc.Notify Create: %v", err)
		return err
	}

	uc.hub.Publish(n)
	return nil
}

// BoardError pushes a transient board failure to the acting user.
func (uc *implUseCase) BoardError(ctx context.Context, userID, message, resourceRef string) {
	uc.hub.Publish(model.Notification{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        model.NotificationTypeBoardError,
		Title:       "Board update failed",
		Message:     message,
		ResourceRef: resourceRef,
		CreatedAt:   time.Now(),
	})
}

// List returns a user's stored notifications.
func (uc *implUseCase) List(ctx context.Context, userID string) ([]model.Notification, error) {
	out, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListByUser: %v", err)
		return nil, err
	}
	return out, nil
}
