package sqlite

import "gorm.io/gorm"

// Migrate creates or updates the notification table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Notification{})
}
