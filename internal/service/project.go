package service

import (
	"portfolio-backend/internal/database/models"
	apperrors "portfolio-backend/internal/errors"
	"portfolio-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// ProjectServiceInterface defines the project operations
type ProjectServiceInterface interface {
	CreateProject(req *CreateProjectRequest) (*models.Project, error)
	GetAllProjects() ([]models.Project, error)
}

// ProjectService handles business logic for project operations
type ProjectService struct {
	projectRepo repository.ProjectRepositoryInterface
	validator   *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo repository.ProjectRepositoryInterface, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		validator:   validator,
	}
}

// CreateProjectRequest represents the request structure for creating a project
type CreateProjectRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Link        string `json:"link"`
}

// CreateProject validates and persists a new project
func (s *ProjectService) CreateProject(req *CreateProjectRequest) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.ErrProjectFieldsMissing
	}

	project := &models.Project{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	}
	if err := s.projectRepo.Create(project); err != nil {
		return nil, err
	}
	return project, nil
}

// GetAllProjects retrieves all projects, newest first
func (s *ProjectService) GetAllProjects() ([]models.Project, error) {
	return s.projectRepo.GetAll()
}
