package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"portfolio-backend/internal/database/models"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleClient handles the OAuth2 flow against Google
type GoogleClient struct {
	config *ProviderConfig
}

// NewGoogleClient creates a new Google provider client
func NewGoogleClient(config *ProviderConfig) *GoogleClient {
	return &GoogleClient{config: config}
}

// GetOAuth2Config returns the OAuth2 configuration for Google
func (c *GoogleClient) GetOAuth2Config(callbackURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.config.ClientID,
		ClientSecret: c.config.ClientSecret,
		RedirectURL:  callbackURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.profile",
			"https://www.googleapis.com/auth/userinfo.email",
		},
		Endpoint: googleoauth.Endpoint,
	}
}

// googleUserInfo is the userinfo endpoint response shape
type googleUserInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// GetUserProfile fetches the user's profile from the Google userinfo
// endpoint and translates it into the normalized profile shape.
func (c *GoogleClient) GetUserProfile(ctx context.Context, token *oauth2.Token) (*Profile, error) {
	ts := oauth2.StaticTokenSource(token)
	client := oauth2.NewClient(ctx, ts)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleUserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Google user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google userinfo returned status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode Google user info: %w", err)
	}
	if info.ID == "" {
		return nil, fmt.Errorf("google userinfo response missing id")
	}

	return &Profile{
		Provider:   models.ProviderGoogle,
		ProviderID: info.ID,
		Name:       info.Name,
		Email:      info.Email,
		AvatarURL:  info.Picture,
	}, nil
}
