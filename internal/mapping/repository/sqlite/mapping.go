package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	repo "qa-board-sync/internal/mapping/repository"
	"qa-board-sync/internal/model"
)

// GetMapping returns the project's saved mapping, zero-value when none exists.
func (r *implRepository) GetMapping(ctx context.Context, projectID int) (model.ColumnMapping, error) {
	var project BoardProject
	err := r.db.WithContext(ctx).First(&project, "project_id = ?", projectID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ColumnMapping{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "mapping.GetMapping project: %v", err)
		return model.ColumnMapping{}, repo.ErrFailedToGet
	}

	var rows []BoardColumn
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("position ASC").
		Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "mapping.GetMapping columns: %v", err)
		return model.ColumnMapping{}, repo.ErrFailedToGet
	}

	m := model.ColumnMapping{
		ProjectID:   project.ProjectID,
		OwnerUserID: project.OwnerUserID,
	}
	for _, row := range rows {
		m.Columns = append(m.Columns, model.Column{
			ID:    row.ColumnID,
			Order: row.Position,
			Label: row.Label,
			Type:  model.ColumnType(row.ColumnType),
		})
	}
	return m, nil
}

// SaveMapping replaces the project's column set in one transaction.
func (r *implRepository) SaveMapping(ctx context.Context, m model.ColumnMapping) (model.ColumnMapping, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		project := BoardProject{ProjectID: m.ProjectID, OwnerUserID: m.OwnerUserID}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "project_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"owner_user_id"}),
		}).Create(&project).Error; err != nil {
			return err
		}

		if err := tx.Where("project_id = ?", m.ProjectID).Delete(&BoardColumn{}).Error; err != nil {
			return err
		}

		rows := make([]BoardColumn, 0, len(m.Columns))
		for _, c := range m.Columns {
			rows = append(rows, BoardColumn{
				ProjectID:  m.ProjectID,
				ColumnID:   c.ID,
				Position:   c.Order,
				Label:      c.Label,
				ColumnType: string(c.Type),
			})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		r.l.Errorf(ctx, "mapping.SaveMapping: %v", err)
		return model.ColumnMapping{}, repo.ErrFailedToSave
	}
	return m, nil
}
