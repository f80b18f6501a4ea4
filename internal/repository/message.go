package repository

import (
	"portfolio-backend/internal/database/models"

	"gorm.io/gorm"
)

// MessageRepositoryInterface defines the contact-message store operations
type MessageRepositoryInterface interface {
	Create(message *models.Message) error
	GetAll() ([]models.Message, error)
}

// MessageRepository handles database operations for contact messages
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create persists a new contact message
func (r *MessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// GetAll retrieves all messages ordered by creation time, newest first
func (r *MessageRepository) GetAll() ([]models.Message, error) {
	messages := make([]models.Message, 0)
	if err := r.db.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
