package sqlite

import (
	"gorm.io/gorm"

	"qa-board-sync/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates the sqlite-backed notification repository.
func New(db *gorm.DB, l log.Logger) *implRepository {
	return &implRepository{db: db, l: l}
}
