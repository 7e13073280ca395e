package repository

import (
	"context"

	"qa-board-sync/internal/model"
)

// Repository defines data access for column mappings.
type Repository interface {
	// GetMapping returns the saved mapping for a project.
	// Returns a zero-value mapping (empty Columns) when none exists —
	// do NOT return error for not-found.
	GetMapping(ctx context.Context, projectID int) (model.ColumnMapping, error)

	// SaveMapping replaces the project's column set atomically.
	SaveMapping(ctx context.Context, m model.ColumnMapping) (model.ColumnMapping, error)
}
