package handlers

import (
	"net/http"
	"time"

	"portfolio-backend/internal/cache"
	apperrors "portfolio-backend/internal/errors"
	"portfolio-backend/internal/logger"
	"portfolio-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BlogPostHandler handles HTTP requests for blog post operations
type BlogPostHandler struct {
	blogPostService service.BlogPostServiceInterface
	cache           *cache.CacheWrapper
	listTTL         time.Duration
}

// NewBlogPostHandler creates a new blog post handler
func NewBlogPostHandler(blogPostService service.BlogPostServiceInterface, cacheWrapper *cache.CacheWrapper, listTTL time.Duration) *BlogPostHandler {
	return &BlogPostHandler{
		blogPostService: blogPostService,
		cache:           cacheWrapper,
		listTTL:         listTTL,
	}
}

// CreateBlogPost handles POST /api/blog-posts
// @Summary Create a blog post
// @Description Store a blog entry
// @Tags blog-posts
// @Accept json
// @Produce json
// @Param post body service.CreateBlogPostRequest true "Blog post"
// @Success 201 {object} models.BlogPost
// @Failure 400 {object} map[string]interface{} "Missing required fields"
// @Failure 500 {object} map[string]interface{} "Storage failure"
// @Router /api/blog-posts [post]
func (h *BlogPostHandler) CreateBlogPost(c *gin.Context) {
	var req service.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required."})
		return
	}

	post, err := h.blogPostService.CreateBlogPost(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required."})
			return
		}
		logger.FromGinContext(c).Errorf("Failed to create blog post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create blog post."})
		return
	}

	h.cache.Invalidate(cache.KeyBlogPostList)
	c.JSON(http.StatusCreated, post)
}

// ListBlogPosts handles GET /api/blog-posts
// @Summary List blog posts
// @Description Return all blog posts, newest first
// @Tags blog-posts
// @Produce json
// @Success 200 {array} models.BlogPost
// @Failure 500 {object} map[string]interface{} "Storage failure"
// @Router /api/blog-posts [get]
func (h *BlogPostHandler) ListBlogPosts(c *gin.Context) {
	data, err := h.cache.GetOrSet(cache.KeyBlogPostList, h.listTTL, func() (interface{}, error) {
		return h.blogPostService.GetAllBlogPosts()
	})
	if err != nil {
		logger.FromGinContext(c).Errorf("Failed to list blog posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog posts."})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}
