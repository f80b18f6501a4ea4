package auth

import (
	"net/http"
	"strings"

	apperrors "portfolio-backend/internal/errors"
	"portfolio-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const authClaimsKey = "auth_claims"

// AuthMiddleware validates bearer tokens on protected routes
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth rejects requests without a valid bearer token and places the
// verified claims into the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrNoToken.Error()})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrNoToken.Error()})
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			logger.FromGinContext(c).Debug("Token validation failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidToken.Error()})
			return
		}

		c.Set(authClaimsKey, claims)
		c.Next()
	}
}

// GetAuthClaims retrieves the verified claims placed by RequireAuth
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	value, exists := c.Get(authClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*AuthClaims)
	return claims, ok
}
