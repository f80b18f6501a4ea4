package models

// Message represents a contact-form submission
type Message struct {
	BaseModel
	Name    string `json:"name" gorm:"size:200;not null" validate:"required"`
	Email   string `json:"email" gorm:"size:320;not null" validate:"required"`
	Subject string `json:"subject" gorm:"size:300"`
	Message string `json:"message" gorm:"type:text;not null" validate:"required"`
}

// TableName returns the table name for Message
func (Message) TableName() string {
	return "messages"
}
