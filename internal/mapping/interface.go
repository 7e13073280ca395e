package mapping

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Get returns the project's saved mapping, or the default
	// three-column set when none is configured.
	Get(ctx context.Context, projectID int) (GetMappingOutput, error)

	// Save validates and persists a project's column mapping.
	// The prior mapping is left untouched when validation fails.
	Save(ctx context.Context, input SaveMappingInput) (SaveMappingOutput, error)
}

// CacheInvalidator drops cached issue listings for a project after its
// mapping changes so subsequent board reads reflect the new columns.
type CacheInvalidator interface {
	Invalidate(projectID int)
}
