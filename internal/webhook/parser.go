package webhook

import (
	"encoding/json"
	"fmt"
	"time"

	"qa-board-sync/internal/model"
)

// TrackerWebhookParser parses tracker webhook payloads
type TrackerWebhookParser struct{}

func NewTrackerParser() *TrackerWebhookParser {
	return &TrackerWebhookParser{}
}

// ParseIssueEvent parses an issue hook into an IssueChangedEvent.
func (p *TrackerWebhookParser) ParseIssueEvent(payload []byte) (*model.IssueChangedEvent, error) {
	var event struct {
		ObjectKind string `json:"object_kind"`
		Project    struct {
			ID int `json:"id"`
		} `json:"project"`
		ObjectAttributes struct {
			IID         int    `json:"iid"` // Issue number
			Title       string `json:"title"`
			Description string `json:"description"`
			Action      string `json:"action"`
			Labels      []struct {
				Title string `json:"title"`
			} `json:"labels"`
		} `json:"object_attributes"`
		Labels []struct {
			Title string `json:"title"`
		} `json:"labels"`
	}

	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse issue event: %w", err)
	}

	if event.Project.ID == 0 || event.ObjectAttributes.IID == 0 {
		return nil, fmt.Errorf("issue event missing project id or issue iid")
	}

	// the tracker carries the label set inside object_attributes; some
	// deliveries duplicate it at the top level, so fall back to that
	src := event.ObjectAttributes.Labels
	if len(src) == 0 {
		src = event.Labels
	}
	labels := make([]string, 0, len(src))
	for _, l := range src {
		labels = append(labels, l.Title)
	}

	return &model.IssueChangedEvent{
		ProjectID:   event.Project.ID,
		IssueIID:    event.ObjectAttributes.IID,
		Title:       event.ObjectAttributes.Title,
		Description: event.ObjectAttributes.Description,
		Labels:      labels,
		ReceivedAt:  time.Now(),
	}, nil
}

// ParseNoteEvent parses a note hook into a CommentAddedEvent.
// TODO: carry object_attributes.id so redelivered note hooks can be
// deduplicated instead of producing a second notification.
func (p *TrackerWebhookParser) ParseNoteEvent(payload []byte) (*model.CommentAddedEvent, error) {
	var event struct {
		ObjectKind string `json:"object_kind"`
		Project    struct {
			ID int `json:"id"`
		} `json:"project"`
		Issue struct {
			IID int `json:"iid"`
		} `json:"issue"`
		ObjectAttributes struct {
			Note string `json:"note"`
		} `json:"object_attributes"`
	}

	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse note event: %w", err)
	}

	if event.Project.ID == 0 || event.Issue.IID == 0 {
		return nil, fmt.Errorf("note event missing project id or issue iid")
	}

	return &model.CommentAddedEvent{
		ProjectID:  event.Project.ID,
		IssueIID:   event.Issue.IID,
		Note:       event.ObjectAttributes.Note,
		ReceivedAt: time.Now(),
	}, nil
}
