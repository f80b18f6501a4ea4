package auth

import (
	"context"
	"fmt"
	"strconv"

	"portfolio-backend/internal/database/models"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"
)

// GitHubClient handles the OAuth2 flow against GitHub
type GitHubClient struct {
	config *ProviderConfig
}

// NewGitHubClient creates a new GitHub provider client
func NewGitHubClient(config *ProviderConfig) *GitHubClient {
	return &GitHubClient{config: config}
}

// GetOAuth2Config returns the OAuth2 configuration for GitHub
func (c *GitHubClient) GetOAuth2Config(callbackURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.config.ClientID,
		ClientSecret: c.config.ClientSecret,
		RedirectURL:  callbackURL,
		Scopes:       []string{"read:user", "user:email"},
		Endpoint:     githuboauth.Endpoint,
	}
}

// GetUserProfile fetches the authenticated user from the GitHub API and
// translates it into the normalized profile shape.
func (c *GitHubClient) GetUserProfile(ctx context.Context, token *oauth2.Token) (*Profile, error) {
	ts := oauth2.StaticTokenSource(token)
	client := github.NewClient(oauth2.NewClient(ctx, ts))

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch GitHub user: %w", err)
	}

	name := user.GetName()
	if name == "" {
		name = user.GetLogin()
	}

	email := user.GetEmail()
	if email == "" {
		// Profile email is hidden; the user:email scope still exposes the list
		if emails, _, err := client.Users.ListEmails(ctx, nil); err == nil {
			for _, e := range emails {
				if e.GetPrimary() {
					email = e.GetEmail()
					break
				}
			}
		}
	}

	return &Profile{
		Provider:   models.ProviderGitHub,
		ProviderID: strconv.FormatInt(user.GetID(), 10),
		Name:       name,
		Email:      email,
		AvatarURL:  user.GetAvatarURL(),
	}, nil
}
