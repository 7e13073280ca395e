package sqlite

// BoardProject is the per-project board configuration row.
type BoardProject struct {
	ProjectID   int    `gorm:"column:project_id;primaryKey"`
	OwnerUserID string `gorm:"column:owner_user_id;type:text;not null"`
}

func (BoardProject) TableName() string {
	return "board_projects"
}

// BoardColumn is one configured column of a project's mapping.
type BoardColumn struct {
	ProjectID  int    `gorm:"column:project_id;primaryKey"`
	ColumnID   string `gorm:"column:column_id;type:text;primaryKey"`
	Position   int    `gorm:"column:position;not null"`
	Label      string `gorm:"column:label;type:text;not null"`
	ColumnType string `gorm:"column:column_type;type:text;not null"`
}

func (BoardColumn) TableName() string {
	return "board_columns"
}
