package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"qa-board-sync/internal/model"
	repo "qa-board-sync/internal/projection/repository"
)

// Upsert writes the projection by natural key, so replaying the same
// issue-changed event is safe.
func (r *implRepository) Upsert(ctx context.Context, p model.LocalProjection) error {
	row := LocalProjection{
		ProjectID:   p.ProjectID,
		IssueIID:    p.IssueIID,
		Status:      string(p.Status),
		Title:       p.Title,
		Description: p.Description,
		UserID:      p.UserID,
		UpdatedAt:   p.UpdatedAt,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "issue_iid"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "title", "description", "user_id", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		r.l.Errorf(ctx, "projection.Upsert: %v", err)
		return repo.ErrFailedToUpsert
	}
	return nil
}

// Get returns the projection, zero-value when missing.
func (r *implRepository) Get(ctx context.Context, projectID, issueIID int) (model.LocalProjection, error) {
	var row LocalProjection
	err := r.db.WithContext(ctx).
		First(&row, "project_id = ? AND issue_iid = ?", projectID, issueIID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.LocalProjection{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "projection.Get: %v", err)
		return model.LocalProjection{}, repo.ErrFailedToGet
	}

	return model.LocalProjection{
		ProjectID:   row.ProjectID,
		IssueIID:    row.IssueIID,
		Status:      model.QAStatus(row.Status),
		Title:       row.Title,
		Description: row.Description,
		UserID:      row.UserID,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}
