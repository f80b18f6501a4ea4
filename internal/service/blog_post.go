package service

import (
	"portfolio-backend/internal/database/models"
	apperrors "portfolio-backend/internal/errors"
	"portfolio-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// BlogPostServiceInterface defines the blog post operations
type BlogPostServiceInterface interface {
	CreateBlogPost(req *CreateBlogPostRequest) (*models.BlogPost, error)
	GetAllBlogPosts() ([]models.BlogPost, error)
}

// BlogPostService handles business logic for blog post operations
type BlogPostService struct {
	blogPostRepo repository.BlogPostRepositoryInterface
	validator    *validator.Validate
}

// NewBlogPostService creates a new blog post service
func NewBlogPostService(blogPostRepo repository.BlogPostRepositoryInterface, validator *validator.Validate) *BlogPostService {
	return &BlogPostService{
		blogPostRepo: blogPostRepo,
		validator:    validator,
	}
}

// CreateBlogPostRequest represents the request structure for creating a blog post
type CreateBlogPostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// CreateBlogPost validates and persists a new blog post
func (s *BlogPostService) CreateBlogPost(req *CreateBlogPostRequest) (*models.BlogPost, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.ErrBlogPostFieldsMissing
	}

	post := &models.BlogPost{
		Title:   req.Title,
		Content: req.Content,
	}
	if err := s.blogPostRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetAllBlogPosts retrieves all blog posts, newest first
func (s *BlogPostService) GetAllBlogPosts() ([]models.BlogPost, error) {
	return s.blogPostRepo.GetAll()
}
