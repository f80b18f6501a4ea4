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

// ContactHandler handles HTTP requests for contact-form submissions
type ContactHandler struct {
	contactService service.ContactServiceInterface
	cache          *cache.CacheWrapper
	listTTL        time.Duration
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService service.ContactServiceInterface, cacheWrapper *cache.CacheWrapper, listTTL time.Duration) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		cache:          cacheWrapper,
		listTTL:        listTTL,
	}
}

// CreateMessage handles POST /api/contact
// @Summary Submit a contact message
// @Description Store a contact-form submission
// @Tags contact
// @Accept json
// @Produce json
// @Param message body service.CreateMessageRequest true "Contact message"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Missing required fields"
// @Failure 500 {object} map[string]interface{} "Storage failure"
// @Router /api/contact [post]
func (h *ContactHandler) CreateMessage(c *gin.Context) {
	var req service.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email, and message are required."})
		return
	}

	if _, err := h.contactService.CreateMessage(&req); err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email, and message are required."})
			return
		}
		logger.FromGinContext(c).Errorf("Failed to save message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message."})
		return
	}

	h.cache.Invalidate(cache.KeyMessageList)
	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully!"})
}

// ListMessages handles GET /api/messages
// @Summary List contact messages
// @Description Return all contact messages, newest first
// @Tags contact
// @Produce json
// @Success 200 {array} models.Message
// @Failure 500 {object} map[string]interface{} "Storage failure"
// @Router /api/messages [get]
func (h *ContactHandler) ListMessages(c *gin.Context) {
	data, err := h.cache.GetOrSet(cache.KeyMessageList, h.listTTL, func() (interface{}, error) {
		return h.contactService.GetAllMessages()
	})
	if err != nil {
		logger.FromGinContext(c).Errorf("Failed to list messages: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages."})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}
