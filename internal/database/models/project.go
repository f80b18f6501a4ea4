package models

// Project represents a portfolio project entry
type Project struct {
	BaseModel
	Title       string `json:"title" gorm:"size:200;not null" validate:"required"`
	Description string `json:"description" gorm:"type:text;not null" validate:"required"`
	Link        string `json:"link" gorm:"size:500"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
