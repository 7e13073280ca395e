package sqlite

import "gorm.io/gorm"

// Migrate creates or updates the projection table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&LocalProjection{})
}
