package http

import (
	"time"

	"qa-board-sync/internal/board"
	"qa-board-sync/pkg/tracker"
)

// --- Request DTOs ---

type dropReq struct {
	ProjectID      int    `json:"-"` // populated from URI param
	UserID         string `json:"-"` // populated from identity middleware
	ActiveIssueIID int    `json:"active_issue_iid" binding:"required"`
	TargetIssueIID int    `json:"target_issue_iid"`
	TargetColumnID string `json:"target_column_id"`
}

func (r dropReq) toInput() board.HandleDropInput {
	return board.HandleDropInput{
		ProjectID:      r.ProjectID,
		UserID:         r.UserID,
		ActiveIssueIID: r.ActiveIssueIID,
		TargetIssueIID: r.TargetIssueIID,
		TargetColumnID: r.TargetColumnID,
	}
}

// --- Response DTOs ---

type issueResp struct {
	ID          int       `json:"id"`
	IID         int       `json:"iid"`
	ProjectID   int       `json:"project_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Labels      []string  `json:"labels"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newIssueResp(issue tracker.Issue) issueResp {
	return issueResp{
		ID:          issue.ID,
		IID:         issue.IID,
		ProjectID:   issue.ProjectID,
		Title:       issue.Title,
		Description: issue.Description,
		Labels:      issue.Labels,
		UpdatedAt:   issue.UpdatedAt,
	}
}

type boardColumnResp struct {
	ID     string      `json:"id"`
	Order  int         `json:"order"`
	Label  string      `json:"label"`
	Type   string      `json:"type"`
	Issues []issueResp `json:"issues"`
}

type boardResp struct {
	Columns   []boardColumnResp `json:"columns"`
	Unmatched []issueResp       `json:"unmatched,omitempty"`
}

func newBoardResp(out board.BoardOutput) boardResp {
	cols := make([]boardColumnResp, len(out.Columns))
	for i, c := range out.Columns {
		issues := make([]issueResp, len(c.Issues))
		for j, issue := range c.Issues {
			issues[j] = newIssueResp(issue)
		}
		cols[i] = boardColumnResp{
			ID:     c.Column.ID,
			Order:  c.Column.Order,
			Label:  c.Column.Label,
			Type:   string(c.Column.Type),
			Issues: issues,
		}
	}
	resp := boardResp{Columns: cols}
	for _, issue := range out.Unmatched {
		resp.Unmatched = append(resp.Unmatched, newIssueResp(issue))
	}
	return resp
}

type dropResp struct {
	Outcome  string `json:"outcome"`
	OldLabel string `json:"old_label,omitempty"`
	NewLabel string `json:"new_label,omitempty"`
}

func newDropResp(out board.HandleDropOutput) dropResp {
	return dropResp{
		Outcome:  string(out.Outcome),
		OldLabel: out.OldLabel,
		NewLabel: out.NewLabel,
	}
}
