package models

// BlogPost represents a blog entry on the portfolio site
type BlogPost struct {
	BaseModel
	Title   string `json:"title" gorm:"size:300;not null" validate:"required"`
	Content string `json:"content" gorm:"type:text;not null" validate:"required"`
}

// TableName returns the table name for BlogPost
func (BlogPost) TableName() string {
	return "blog_posts"
}
