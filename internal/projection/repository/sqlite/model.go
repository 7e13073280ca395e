package sqlite

import "time"

// LocalProjection is the cached QA status row of one tracked issue.
type LocalProjection struct {
	ProjectID   int       `gorm:"column:project_id;primaryKey"`
	IssueIID    int       `gorm:"column:issue_iid;primaryKey"`
	Status      string    `gorm:"column:status;type:text"`
	Title       string    `gorm:"column:title;type:text;not null"`
	Description string    `gorm:"column:description;type:text;not null"`
	UserID      string    `gorm:"column:user_id;type:text;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"`
}

func (LocalProjection) TableName() string {
	return "local_projections"
}
