package repository

import (
	"portfolio-backend/internal/database/models"

	"gorm.io/gorm"
)

// BlogPostRepositoryInterface defines the blog post store operations
type BlogPostRepositoryInterface interface {
	Create(post *models.BlogPost) error
	GetAll() ([]models.BlogPost, error)
}

// BlogPostRepository handles database operations for blog posts
type BlogPostRepository struct {
	db *gorm.DB
}

// NewBlogPostRepository creates a new blog post repository
func NewBlogPostRepository(db *gorm.DB) *BlogPostRepository {
	return &BlogPostRepository{db: db}
}

// Create persists a new blog post
func (r *BlogPostRepository) Create(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

// GetAll retrieves all blog posts ordered by creation time, newest first
func (r *BlogPostRepository) GetAll() ([]models.BlogPost, error) {
	posts := make([]models.BlogPost, 0)
	if err := r.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
