package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio-backend/internal/database/models"
	apperrors "portfolio-backend/internal/errors"
	"portfolio-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func testAuthConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret:       "test-signing-key",
		RedirectURL:     "http://localhost:3000",
		CallbackBaseURL: "http://localhost:5000",
		Providers: map[string]ProviderConfig{
			"github": {
				ClientID:     "gh-client-id",
				ClientSecret: "gh-client-secret",
			},
			"google": {
				ClientID:     "goog-client-id",
				ClientSecret: "goog-client-secret",
			},
		},
	}
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config structure", func(t *testing.T) {
		config := testAuthConfig()

		err := config.ValidateConfig()
		assert.NoError(t, err)
		assert.NotEmpty(t, config.JWTSecret)
		assert.NotEmpty(t, config.RedirectURL)
	})

	t.Run("defaults applied on validate", func(t *testing.T) {
		config := testAuthConfig()
		config.CallbackBaseURL = ""
		config.TokenExpiresInDays = 0

		err := config.ValidateConfig()
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:5000", config.CallbackBaseURL)
		assert.Equal(t, 7, config.TokenExpiresInDays)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		config := testAuthConfig()
		config.JWTSecret = ""

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("missing redirect url", func(t *testing.T) {
		config := testAuthConfig()
		config.RedirectURL = ""

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "redirect URL is required")
	})

	t.Run("no providers", func(t *testing.T) {
		config := testAuthConfig()
		config.Providers = nil

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least one provider")
	})

	t.Run("missing client credentials", func(t *testing.T) {
		config := testAuthConfig()
		config.Providers["github"] = ProviderConfig{ClientSecret: "only-secret"}

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "client_id is required")
	})
}

func TestGetProvider(t *testing.T) {
	config := testAuthConfig()

	provider, err := config.GetProvider("github")
	require.NoError(t, err)
	assert.Equal(t, "gh-client-id", provider.ClientID)

	_, err = config.GetProvider("gitlab")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestNewAuthService(t *testing.T) {
	t.Run("builds a client per configured provider", func(t *testing.T) {
		service, err := NewAuthService(testAuthConfig(), nil)
		require.NoError(t, err)
		assert.Len(t, service.clients, 2)
	})

	t.Run("rejects unsupported provider names", func(t *testing.T) {
		config := testAuthConfig()
		config.Providers["gitlab"] = ProviderConfig{ClientID: "id", ClientSecret: "secret"}

		_, err := NewAuthService(config, nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported provider")
	})
}

func TestGetAuthURL(t *testing.T) {
	service, err := NewAuthService(testAuthConfig(), nil)
	require.NoError(t, err)

	t.Run("github authorization URL", func(t *testing.T) {
		authURL, err := service.GetAuthURL("github", "state-123")
		require.NoError(t, err)
		assert.Contains(t, authURL, "github.com")
		assert.Contains(t, authURL, "client_id=gh-client-id")
		assert.Contains(t, authURL, "state=state-123")
		assert.Contains(t, authURL, "callback")
	})

	t.Run("google authorization URL", func(t *testing.T) {
		authURL, err := service.GetAuthURL("google", "state-456")
		require.NoError(t, err)
		assert.Contains(t, authURL, "accounts.google.com")
		assert.Contains(t, authURL, "client_id=goog-client-id")
	})

	t.Run("unconfigured provider", func(t *testing.T) {
		_, err := service.GetAuthURL("gitlab", "state")
		assert.ErrorIs(t, err, apperrors.ErrProviderNotConfigured)
	})
}

func TestJWTOperations(t *testing.T) {
	service, err := NewAuthService(testAuthConfig(), nil)
	require.NoError(t, err)

	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Provider:  models.ProviderGitHub,
		Name:      "Octo Cat",
		Email:     "octo@example.com",
	}

	t.Run("round trip", func(t *testing.T) {
		token, err := service.GenerateJWT(user)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateJWT(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, "portfolio-backend", claims.Issuer)
	})

	t.Run("expiry is seven days out", func(t *testing.T) {
		before := time.Now()
		token, err := service.GenerateJWT(user)
		require.NoError(t, err)

		claims, err := service.ValidateJWT(token)
		require.NoError(t, err)

		expected := before.AddDate(0, 0, 7)
		assert.WithinDuration(t, expected, claims.ExpiresAt.Time, time.Minute)
	})

	t.Run("tampered token rejected", func(t *testing.T) {
		token, err := service.GenerateJWT(user)
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		tampered := parts[0] + "." + parts[1] + "x." + parts[2]

		_, err = service.ValidateJWT(tampered)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		otherConfig := testAuthConfig()
		otherConfig.JWTSecret = "a-different-key"
		other, err := NewAuthService(otherConfig, nil)
		require.NoError(t, err)

		token, err := other.GenerateJWT(user)
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := service.ValidateJWT("not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestJWTExpiration_ExpiredTokenInvalid(t *testing.T) {
	service, err := NewAuthService(testAuthConfig(), nil)
	require.NoError(t, err)

	now := time.Now()
	claims := &AuthClaims{
		UserID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-8 * 24 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-1 * time.Minute)),
			Issuer:    "portfolio-backend",
		},
	}
	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	expired, err := jwtToken.SignedString([]byte(service.config.JWTSecret))
	require.NoError(t, err)

	_, err = service.ValidateJWT(expired)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateJWT_MissingUserID(t *testing.T) {
	service, err := NewAuthService(testAuthConfig(), nil)
	require.NoError(t, err)

	claims := &AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Issuer:    "portfolio-backend",
		},
	}
	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err := jwtToken.SignedString([]byte(service.config.JWTSecret))
	require.NoError(t, err)

	_, err = service.ValidateJWT(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestAuthHandlerStart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service, err := NewAuthService(testAuthConfig(), nil)
	require.NoError(t, err)
	handler := NewAuthHandler(service, nil)

	r := gin.New()
	r.GET("/auth/:provider", handler.Start)

	t.Run("redirects to provider", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/github", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		location := w.Header().Get("Location")
		assert.Contains(t, location, "github.com")
		assert.Contains(t, location, "state=")
	})

	t.Run("unsupported provider", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/gitlab", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Unsupported provider", body["error"])
	})
}

func TestAuthHandlerCallback_FailuresRedirectHome(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service, err := NewAuthService(testAuthConfig(), nil)
	require.NoError(t, err)
	handler := NewAuthHandler(service, nil)

	r := gin.New()
	r.GET("/auth/:provider/callback", handler.Callback)

	cases := []struct {
		name string
		path string
	}{
		{"provider reported error", "/auth/github/callback?error=access_denied"},
		{"missing code", "/auth/github/callback"},
		{"unconfigured provider", "/auth/gitlab/callback?code=abc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, "/", w.Header().Get("Location"))
		})
	}
}

func TestAuthHandlerMe(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service, err := NewAuthService(testAuthConfig(), nil)
	require.NoError(t, err)

	userID := uuid.New()
	user := &models.User{
		BaseModel: models.BaseModel{ID: userID},
		Provider:  models.ProviderGoogle,
		Name:      "Jane Doe",
		Email:     "jane@example.com",
	}

	newRouter := func(repo *mocks.MockUserRepositoryInterface) *gin.Engine {
		handler := NewAuthHandler(service, repo)
		mw := NewAuthMiddleware(service)
		r := gin.New()
		r.GET("/auth/me", mw.RequireAuth(), handler.Me)
		return r
	}

	t.Run("returns the authenticated user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockUserRepositoryInterface(ctrl)
		repo.EXPECT().GetByID(userID).Return(user, nil)

		token, err := service.GenerateJWT(user)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		newRouter(repo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got models.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, userID, got.ID)
		assert.Equal(t, "jane@example.com", got.Email)
	})

	t.Run("user deleted since token issue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockUserRepositoryInterface(ctrl)
		repo.EXPECT().GetByID(userID).Return(nil, gorm.ErrRecordNotFound)

		token, err := service.GenerateJWT(user)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		newRouter(repo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "User not found", body["error"])
	})
}

func TestGitHubClientConfig(t *testing.T) {
	client := NewGitHubClient(&ProviderConfig{ClientID: "id", ClientSecret: "secret"})
	config := client.GetOAuth2Config("http://localhost:5000/auth/github/callback")

	assert.Equal(t, "id", config.ClientID)
	assert.Equal(t, "http://localhost:5000/auth/github/callback", config.RedirectURL)
	assert.Contains(t, config.Scopes, "read:user")
	assert.Contains(t, config.Scopes, "user:email")
}

func TestGoogleClientConfig(t *testing.T) {
	client := NewGoogleClient(&ProviderConfig{ClientID: "id", ClientSecret: "secret"})
	config := client.GetOAuth2Config("http://localhost:5000/auth/google/callback")

	assert.Equal(t, "id", config.ClientID)
	assert.Equal(t, "http://localhost:5000/auth/google/callback", config.RedirectURL)
	assert.NotEmpty(t, config.Scopes)
}
