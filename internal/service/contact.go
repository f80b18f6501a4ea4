package service

import (
	"portfolio-backend/internal/database/models"
	apperrors "portfolio-backend/internal/errors"
	"portfolio-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// ContactServiceInterface defines the contact-message operations
type ContactServiceInterface interface {
	CreateMessage(req *CreateMessageRequest) (*models.Message, error)
	GetAllMessages() ([]models.Message, error)
}

// ContactService handles business logic for contact-form submissions
type ContactService struct {
	messageRepo repository.MessageRepositoryInterface
	validator   *validator.Validate
}

// NewContactService creates a new contact service
func NewContactService(messageRepo repository.MessageRepositoryInterface, validator *validator.Validate) *ContactService {
	return &ContactService{
		messageRepo: messageRepo,
		validator:   validator,
	}
}

// CreateMessageRequest represents the request structure for a contact submission
type CreateMessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// CreateMessage validates and persists a contact message
func (s *ContactService) CreateMessage(req *CreateMessageRequest) (*models.Message, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.ErrContactFieldsMissing
	}

	message := &models.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}
	return message, nil
}

// GetAllMessages retrieves all messages, newest first
func (s *ContactService) GetAllMessages() ([]models.Message, error) {
	return s.messageRepo.GetAll()
}
