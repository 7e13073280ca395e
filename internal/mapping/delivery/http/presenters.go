package http

import (
	"qa-board-sync/internal/mapping"
	"qa-board-sync/internal/model"
)

// --- Request DTOs ---

type columnReq struct {
	ID    string `json:"id"    binding:"required,min=1,max=64"`
	Order int    `json:"order"`
	Label string `json:"label" binding:"required,min=1,max=255"`
	Type  string `json:"type"  binding:"required,oneof=pending passed failed custom"`
}

type saveReq struct {
	ProjectID   int         `json:"-"` // populated from URI param
	OwnerUserID string      `json:"owner_user_id" binding:"required"`
	Columns     []columnReq `json:"columns"`
}

func (r saveReq) toInput() mapping.SaveMappingInput {
	cols := make([]model.Column, len(r.Columns))
	for i, c := range r.Columns {
		cols[i] = model.Column{
			ID:    c.ID,
			Order: c.Order,
			Label: c.Label,
			Type:  model.ColumnType(c.Type),
		}
	}
	return mapping.SaveMappingInput{
		ProjectID:   r.ProjectID,
		OwnerUserID: r.OwnerUserID,
		Columns:     cols,
	}
}

// --- Response DTOs ---

type columnResp struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

type mappingResp struct {
	ProjectID   int          `json:"project_id"`
	OwnerUserID string       `json:"owner_user_id,omitempty"`
	Columns     []columnResp `json:"columns"`
	Defaulted   bool         `json:"defaulted,omitempty"`
}

func newMappingResp(m model.ColumnMapping, defaulted bool) mappingResp {
	cols := make([]columnResp, len(m.Columns))
	for i, c := range m.Columns {
		cols[i] = columnResp{
			ID:    c.ID,
			Order: c.Order,
			Label: c.Label,
			Type:  string(c.Type),
		}
	}
	return mappingResp{
		ProjectID:   m.ProjectID,
		OwnerUserID: m.OwnerUserID,
		Columns:     cols,
		Defaulted:   defaulted,
	}
}
