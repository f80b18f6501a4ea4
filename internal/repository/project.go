package repository

import (
	"portfolio-backend/internal/database/models"

	"gorm.io/gorm"
)

// ProjectRepositoryInterface defines the project store operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetAll() ([]models.Project, error)
}

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create persists a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetAll retrieves all projects ordered by creation time, newest first
func (r *ProjectRepository) GetAll() ([]models.Project, error) {
	projects := make([]models.Project, 0)
	if err := r.db.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}
