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

// ProjectHandler handles HTTP requests for project operations
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
	cache          *cache.CacheWrapper
	listTTL        time.Duration
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface, cacheWrapper *cache.CacheWrapper, listTTL time.Duration) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		cache:          cacheWrapper,
		listTTL:        listTTL,
	}
}

// CreateProject handles POST /api/projects
// @Summary Create a project
// @Description Store a portfolio project entry
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project"
// @Success 201 {object} models.Project
// @Failure 400 {object} map[string]interface{} "Missing required fields"
// @Failure 500 {object} map[string]interface{} "Storage failure"
// @Router /api/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and description are required."})
		return
	}

	project, err := h.projectService.CreateProject(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title and description are required."})
			return
		}
		logger.FromGinContext(c).Errorf("Failed to create project: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project."})
		return
	}

	h.cache.Invalidate(cache.KeyProjectList)
	c.JSON(http.StatusCreated, project)
}

// ListProjects handles GET /api/projects
// @Summary List projects
// @Description Return all projects, newest first
// @Tags projects
// @Produce json
// @Success 200 {array} models.Project
// @Failure 500 {object} map[string]interface{} "Storage failure"
// @Router /api/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	data, err := h.cache.GetOrSet(cache.KeyProjectList, h.listTTL, func() (interface{}, error) {
		return h.projectService.GetAllProjects()
	})
	if err != nil {
		logger.FromGinContext(c).Errorf("Failed to list projects: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects."})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}
