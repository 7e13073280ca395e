package http

import (
	"qa-board-sync/internal/model"
	"qa-board-sync/pkg/response"
)

// --- Response DTOs ---

type notificationResp struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	Type        string            `json:"type"`
	Title       string            `json:"title"`
	Message     string            `json:"message"`
	ResourceRef string            `json:"resource_ref,omitempty"`
	Read        bool              `json:"read"`
	CreatedAt   response.DateTime `json:"created_at"`
}

func newNotificationResp(n model.Notification) notificationResp {
	return notificationResp{
		ID:          n.ID,
		UserID:      n.UserID,
		Type:        string(n.Type),
		Title:       n.Title,
		Message:     n.Message,
		ResourceRef: n.ResourceRef,
		Read:        n.Read,
		CreatedAt:   response.DateTime(n.CreatedAt),
	}
}

type listResp struct {
	Notifications []notificationResp `json:"notifications"`
}

func newListResp(ns []model.Notification) listResp {
	out := listResp{Notifications: make([]notificationResp, len(ns))}
	for i, n := range ns {
		out.Notifications[i] = newNotificationResp(n)
	}
	return out
}
