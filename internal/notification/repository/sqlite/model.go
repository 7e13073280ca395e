package sqlite

import "time"

// Notification is a stored per-user notification row.
type Notification struct {
	ID          string    `gorm:"column:id;primaryKey"`
	UserID      string    `gorm:"column:user_id;type:text;not null;index"`
	Type        string    `gorm:"column:type;type:text;not null"`
	Title       string    `gorm:"column:title;type:text;not null"`
	Message     string    `gorm:"column:message;type:text;not null"`
	ResourceRef string    `gorm:"column:resource_ref;type:text"`
	Read        bool      `gorm:"column:read;not null;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
}

func (Notification) TableName() string {
	return "notifications"
}
