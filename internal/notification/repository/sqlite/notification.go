package sqlite

import (
	"context"

	"qa-board-sync/internal/model"
	repo "qa-board-sync/internal/notification/repository"
)

// Create inserts a notification row.
func (r *implRepository) Create(ctx context.Context, n model.Notification) error {
	row := Notification{
		ID:          n.ID,
		UserID:      n.UserID,
		Type:        string(n.Type),
		Title:       n.Title,
		Message:     n.Message,
		ResourceRef: n.ResourceRef,
		Read:        n.Read,
		CreatedAt:   n.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.l.Errorf(ctx, "notification.Create: %v", err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// ListByUser returns a user's notifications, newest first.
func (r *implRepository) ListByUser(ctx context.Context, userID string) ([]model.Notification, error) {
	var rows []Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		r.l.Errorf(ctx, "notification.ListByUser: %v", err)
		return nil, repo.ErrFailedToList
	}

	out := make([]model.Notification, len(rows))
	for i, row := range rows {
		out[i] = model.Notification{
			ID:          row.ID,
			UserID:      row.UserID,
			Type:        model.NotificationType(row.Type),
			Title:       row.Title,
			Message:     row.Message,
			ResourceRef: row.ResourceRef,
			Read:        row.Read,
			CreatedAt:   row.CreatedAt,
		}
	}
	return out, nil
}
