package mapping

import "qa-board-sync/internal/model"

// --- UseCase Inputs ---

type SaveMappingInput struct {
	ProjectID   int
	OwnerUserID string
	Columns     []model.Column
}

// --- UseCase Outputs ---

type GetMappingOutput struct {
	Mapping model.ColumnMapping
	// Defaulted is true when the project has no saved mapping and the
	// default three-column set was returned instead.
	Defaulted bool
}

type SaveMappingOutput struct {
	Mapping model.ColumnMapping
}
