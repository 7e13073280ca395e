package usecase

import (
	"context"

	"github.com/google/uuid"

	"qa-board-sync/internal/mapping"
	"qa-board-sync/internal/model"
)

// commentPreviewLimit caps the notification message drawn from a
// comment body.
const commentPreviewLimit = 255

// ProcessIssueChanged re-derives the issue's QA status from the event's
// labels and upserts the projection row. Projects without a configured
// mapping are skipped: the service only tracks projects someone has
// claimed.
func (uc *implUseCase) ProcessIssueChanged(ctx context.Context, event model.IssueChangedEvent) error {
	mapOut, err := uc.mappingUC.Get(ctx, event.ProjectID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProcessIssueChanged Get mapping: %v", err)
		return err
	}
	if mapOut.Defaulted {
		uc.l.Debugf(ctx, "uc.ProcessIssueChanged: project %d has no mapping, skipping issue %d", event.ProjectID, event.IssueIID)
		return nil
	}

	status := resolveStatus(mapOut.Mapping.Columns, event.Labels)

	p := model.LocalProjection{
		ProjectID:   event.ProjectID,
		IssueIID:    event.IssueIID,
		Status:      status,
		Title:       event.Title,
		Description: event.Description,
		UserID:      mapOut.Mapping.OwnerUserID,
		UpdatedAt:   event.ReceivedAt,
	}
	if err := uc.repo.Upsert(ctx, p); err != nil {
		uc.l.Errorf(ctx, "uc.ProcessIssueChanged Upsert: %v", err)
		return err
	}

	// the board listing for this project is now stale
	uc.cache.Invalidate(event.ProjectID)
	return nil
}

// ProcessCommentAdded notifies the projection's owning user about a new
// comment. Issues the service has never projected are ignored so a
// notification can never point at an untracked issue.
func (uc *implUseCase) ProcessCommentAdded(ctx context.Context, event model.CommentAddedEvent) error {
	proj, err := uc.repo.Get(ctx, event.ProjectID, event.IssueIID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProcessCommentAdded Get: %v", err)
		return err
	}
	if proj.ProjectID == 0 {
		uc.l.Debugf(ctx, "uc.ProcessCommentAdded: no projection for project %d issue %d, skipping", event.ProjectID, event.IssueIID)
		return nil
	}

	n := model.Notification{
		ID:          uuid.NewString(),
		UserID:      proj.UserID,
		Type:        model.NotificationTypeComment,
		Title:       "New comment on " + proj.Title,
		Message:     truncate(event.Note, commentPreviewLimit),
		ResourceRef: uc.tracker.IssueURL(event.ProjectID, event.IssueIID),
		CreatedAt:   event.ReceivedAt,
	}
	if err := uc.notificationUC.Notify(ctx, n); err != nil {
		uc.l.Errorf(ctx, "uc.ProcessCommentAdded Notify: %v", err)
		return err
	}
	return nil
}

// resolveStatus maps the winning column type onto a projection status.
// Custom columns and unmatched label sets project no status.
func resolveStatus(cols []model.Column, labels []string) model.QAStatus {
	col, ok := mapping.Resolve(cols, labels)
	if !ok {
		return ""
	}
	switch col.Type {
	case model.ColumnTypePending:
		return model.QAStatusPending
	case model.ColumnTypePassed:
		return model.QAStatusPassed
	case model.ColumnTypeFailed:
		return model.QAStatusFailed
	default:
		return ""
	}
}

// truncate cuts s to at most limit runes.
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
