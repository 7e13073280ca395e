package sqlite

import "gorm.io/gorm"

// Migrate creates or updates the mapping tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&BoardProject{}, &BoardColumn{})
}
