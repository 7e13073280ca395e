package repository

import (
	"context"

	"qa-board-sync/internal/model"
)

// Repository defines data access for local projections.
type Repository interface {
	// Upsert writes the projection row keyed by (projectID, issueIID).
	Upsert(ctx context.Context, p model.LocalProjection) error

	// Get returns the projection for one issue. Returns a zero-value
	// projection (ProjectID == 0) when none exists — do NOT return
	// error for not-found.
	Get(ctx context.Context, projectID, issueIID int) (model.LocalProjection, error)
}
