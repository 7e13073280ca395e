package usecase

import (
	"context"
	"sort"

	"qa-board-sync/internal/mapping"
	"qa-board-sync/internal/model"
)

// Get returns the saved mapping, or the default three-column set when
// the project has no configuration.
func (uc *implUseCase) Get(ctx context.Context, projectID int) (mapping.GetMappingOutput, error) {
	m, err := uc.repo.GetMapping(ctx, projectID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Get GetMapping: %v", err)
		return mapping.GetMappingOutput{}, err
	}

	if len(m.Columns) == 0 {
		return mapping.GetMappingOutput{
			Mapping: model.ColumnMapping{
				ProjectID: projectID,
				Columns:   mapping.DefaultColumns(),
			},
			Defaulted: true,
		}, nil
	}
	return mapping.GetMappingOutput{Mapping: m}, nil
}

// Save validates, normalizes and persists the mapping. Validation runs
// before any write so a rejected mapping leaves the prior one untouched.
func (uc *implUseCase) Save(ctx context.Context, input mapping.SaveMappingInput) (mapping.SaveMappingOutput, error) {
	if err := validate(input); err != nil {
		return mapping.SaveMappingOutput{}, err
	}

	m := model.ColumnMapping{
		ProjectID:   input.ProjectID,
		OwnerUserID: input.OwnerUserID,
		Columns:     normalize(input.Columns),
	}

	saved, err := uc.repo.SaveMapping(ctx, m)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Save SaveMapping: %v", err)
		return mapping.SaveMappingOutput{}, err
	}

	uc.cache.Invalidate(input.ProjectID)
	return mapping.SaveMappingOutput{Mapping: saved}, nil
}

func validate(input mapping.SaveMappingInput) error {
	if input.OwnerUserID == "" {
		return mapping.ErrOwnerUserIDMissing
	}
	if len(input.Columns) == 0 {
		return mapping.ErrEmptyMapping
	}

	seen := make(map[string]struct{}, len(input.Columns))
	var passed, failed int
	for _, c := range input.Columns {
		if _, dup := seen[c.ID]; dup {
			return mapping.ErrDuplicateColumnID
		}
		seen[c.ID] = struct{}{}

		switch c.Type {
		case model.ColumnTypePassed:
			passed++
		case model.ColumnTypeFailed:
			failed++
		case model.ColumnTypePending, model.ColumnTypeCustom:
		default:
			return mapping.ErrUnknownColumnType
		}
	}

	if passed != 1 {
		return mapping.ErrPassedColumnCount
	}
	if failed != 1 {
		return mapping.ErrFailedColumnCount
	}
	return nil
}

// normalize rewrites Order to be dense and zero-based, preserving the
// configured relative order.
func normalize(cols []model.Column) []model.Column {
	out := make([]model.Column, len(cols))
	copy(out, cols)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	for i := range out {
		out[i].Order = i
	}
	return out
}
