package models

// User represents a local account created on first login via an
// identity provider. The (provider, provider_id) pair is the sole
// identity key; email is informational only and may repeat across
// providers.
type User struct {
	BaseModel
	Provider   string `json:"provider" gorm:"size:20;not null;uniqueIndex:idx_users_provider_identity"`
	ProviderID string `json:"provider_id" gorm:"size:191;not null;uniqueIndex:idx_users_provider_identity"`
	Name       string `json:"name" gorm:"size:200;not null"`
	Email      string `json:"email" gorm:"size:320"`
	AvatarURL  string `json:"avatar_url" gorm:"size:500"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// Supported identity provider names
const (
	ProviderGoogle = "google"
	ProviderGitHub = "github"
)
