package model

// ColumnType is the semantic role of a board column.
type ColumnType string

const (
	ColumnTypePending ColumnType = "pending"
	ColumnTypePassed  ColumnType = "passed"
	ColumnTypeFailed  ColumnType = "failed"
	ColumnTypeCustom  ColumnType = "custom"
)

// Column is a workflow bucket tied to exactly one tracker label.
type Column struct {
	ID    string     // unique within a mapping
	Order int        // dense, zero-based after normalization
	Label string     // the tracker label this column maps to
	Type  ColumnType // pending, passed, failed or custom
}

// ColumnMapping is the ordered column configuration of one project.
// Exactly one passed and one failed column must exist in a saved mapping.
type ColumnMapping struct {
	ProjectID   int
	OwnerUserID string // user who receives comment notifications
	Columns     []Column
}
