package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"portfolio-backend/internal/database/models"
	apperrors "portfolio-backend/internal/errors"
	"portfolio-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService provides authentication functionality: it drives the
// provider OAuth2 flows, resolves local users and issues bearer tokens.
type AuthService struct {
	config   *AuthConfig
	clients  map[string]ProviderClient
	userRepo repository.UserRepositoryInterface
}

// AuthClaims represents the claims carried by an issued bearer token
type AuthClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// NewAuthService creates a new authentication service. Provider clients are
// built once from the explicit configuration map.
func NewAuthService(config *AuthConfig, userRepo repository.UserRepositoryInterface) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	clients := make(map[string]ProviderClient)
	for providerName := range config.Providers {
		providerConfig := config.Providers[providerName]
		switch providerName {
		case models.ProviderGoogle:
			clients[providerName] = NewGoogleClient(&providerConfig)
		case models.ProviderGitHub:
			clients[providerName] = NewGitHubClient(&providerConfig)
		default:
			return nil, fmt.Errorf("unsupported provider '%s'", providerName)
		}
	}

	return &AuthService{
		config:   config,
		clients:  clients,
		userRepo: userRepo,
	}, nil
}

// callbackURL builds the provider callback URL from the configured base
func (s *AuthService) callbackURL(provider string) string {
	return fmt.Sprintf("%s/auth/%s/callback", s.config.CallbackBaseURL, provider)
}

// GetAuthURL generates the OAuth2 authorization URL for a provider
func (s *AuthService) GetAuthURL(provider, state string) (string, error) {
	client, exists := s.clients[provider]
	if !exists {
		return "", apperrors.ErrProviderNotConfigured
	}

	oauth2Config := client.GetOAuth2Config(s.callbackURL(provider))
	return oauth2Config.AuthCodeURL(state), nil
}

// HandleCallback processes the provider callback: exchanges the
// authorization code, fetches the normalized profile, resolves the local
// user and issues a bearer token. On any failure no local state is created.
func (s *AuthService) HandleCallback(ctx context.Context, provider, code string) (*models.User, string, error) {
	client, exists := s.clients[provider]
	if !exists {
		return nil, "", apperrors.ErrProviderNotConfigured
	}

	oauth2Config := client.GetOAuth2Config(s.callbackURL(provider))
	token, err := oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, "", fmt.Errorf("failed to exchange code for token: %w", err)
	}

	profile, err := client.GetUserProfile(ctx, token)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get user profile: %w", err)
	}

	user, err := s.userRepo.ResolveOrCreate(&models.User{
		Provider:   profile.Provider,
		ProviderID: profile.ProviderID,
		Name:       profile.Name,
		Email:      profile.Email,
		AvatarURL:  profile.AvatarURL,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve user: %w", err)
	}

	jwtToken, err := s.GenerateJWT(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate JWT: %w", err)
	}

	return user, jwtToken, nil
}

// GenerateJWT creates a signed bearer token for the user, valid for the
// configured number of days from issuance.
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: user.ID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.AddDate(0, 0, s.config.TokenExpiresInDays)),
			Issuer:    "portfolio-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a bearer token. It fails closed: any
// structural, signature or expiry failure yields the same invalid-token
// error so callers cannot distinguish the cause.
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}

// generateRandomString generates a random base64 encoded string
func (s *AuthService) generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
