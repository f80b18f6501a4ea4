package auth

import (
	"context"

	"golang.org/x/oauth2"
)

// Profile is the normalized identity assertion returned by a provider.
// Each provider client translates its own response shape into this value;
// Email and AvatarURL may be empty depending on the provider.
type Profile struct {
	Provider   string `json:"provider"`
	ProviderID string `json:"provider_id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	AvatarURL  string `json:"avatar_url,omitempty"`
}

// ProviderClient abstracts a single identity provider's OAuth2 flow
type ProviderClient interface {
	// GetOAuth2Config returns the oauth2 configuration bound to a callback URL
	GetOAuth2Config(callbackURL string) *oauth2.Config
	// GetUserProfile fetches the user's profile using an exchanged token
	// and translates it into the normalized Profile
	GetUserProfile(ctx context.Context, token *oauth2.Token) (*Profile, error)
}
