package auth

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret          string                    `yaml:"jwt_secret" json:"jwt_secret"`
	RedirectURL        string                    `yaml:"redirect_url" json:"redirect_url"`
	CallbackBaseURL    string                    `yaml:"callback_base_url" json:"callback_base_url"`
	TokenExpiresInDays int                       `yaml:"token_expires_in_days" json:"token_expires_in_days"`
	Providers          map[string]ProviderConfig `yaml:"providers" json:"providers"`
}

// ProviderConfig holds configuration for a specific identity provider
type ProviderConfig struct {
	ClientID     string `yaml:"client_id" json:"client_id"`
	ClientSecret string `yaml:"client_secret" json:"client_secret"`
}

// LoadAuthConfig loads and validates authentication configuration.
// Provider credentials are passed in explicitly here rather than registered
// through any global provider registry.
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setAuthDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
		// Config file not found, use defaults and environment variables
	}

	v.AutomaticEnv()

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	// Override with environment variables for sensitive data
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}
	if redirectURL := os.Getenv("FRONTEND_URL"); redirectURL != "" {
		config.RedirectURL = redirectURL
	}
	if callbackBase := os.Getenv("CALLBACK_BASE_URL"); callbackBase != "" {
		config.CallbackBaseURL = callbackBase
	}

	// Token expiration days: allow env override and default
	if expStr := os.Getenv("TOKEN_EXPIRES_IN_DAYS"); expStr != "" {
		if exp, err := strconv.Atoi(expStr); err == nil && exp > 0 {
			config.TokenExpiresInDays = exp
		}
	}

	config = overrideFromEnvironment(config)

	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return &config, nil
}

// GetProvider returns the configuration for a specific provider
func (c *AuthConfig) GetProvider(provider string) (*ProviderConfig, error) {
	providerConfig, exists := c.Providers[provider]
	if !exists {
		return nil, fmt.Errorf("provider '%s' not found", provider)
	}

	return &providerConfig, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if c.RedirectURL == "" {
		return fmt.Errorf("redirect URL is required")
	}

	if len(c.Providers) == 0 {
		return fmt.Errorf("at least one provider must be configured")
	}

	for providerName, provider := range c.Providers {
		if provider.ClientID == "" {
			return fmt.Errorf("client_id is required for provider '%s'", providerName)
		}
		if provider.ClientSecret == "" {
			return fmt.Errorf("client_secret is required for provider '%s'", providerName)
		}
	}

	if c.CallbackBaseURL == "" {
		c.CallbackBaseURL = "http://localhost:5000"
	}
	if c.TokenExpiresInDays <= 0 {
		// Tokens are valid for a fixed 7 days when not configured
		c.TokenExpiresInDays = 7
	}

	return nil
}

// setAuthDefaults sets default values for auth configuration
func setAuthDefaults(v *viper.Viper) {
	v.SetDefault("redirect_url", "http://localhost:3000")
	v.SetDefault("callback_base_url", "http://localhost:5000")
	// No default JWT secret - must be provided via environment variable
	v.SetDefault("token_expires_in_days", 7)

	v.SetDefault("providers", map[string]interface{}{
		"google": map[string]interface{}{
			"client_id":     "",
			"client_secret": "",
		},
		"github": map[string]interface{}{
			"client_id":     "",
			"client_secret": "",
		},
	})
}

// overrideFromEnvironment overrides provider credentials with env variables
func overrideFromEnvironment(config AuthConfig) AuthConfig {
	updateProviderConfig := func(providerName, clientID, clientSecret string) {
		provider := config.Providers[providerName]
		if clientID != "" {
			provider.ClientID = clientID
		}
		if clientSecret != "" {
			provider.ClientSecret = clientSecret
		}
		if provider.ClientID != "" || provider.ClientSecret != "" {
			if config.Providers == nil {
				config.Providers = make(map[string]ProviderConfig)
			}
			config.Providers[providerName] = provider
		}
	}

	updateProviderConfig("google",
		os.Getenv("GOOGLE_CLIENT_ID"),
		os.Getenv("GOOGLE_CLIENT_SECRET"))

	updateProviderConfig("github",
		os.Getenv("GITHUB_CLIENT_ID"),
		os.Getenv("GITHUB_CLIENT_SECRET"))

	// Drop providers with no credentials so only configured providers are exposed
	for name, p := range config.Providers {
		if p.ClientID == "" && p.ClientSecret == "" {
			delete(config.Providers, name)
		}
	}

	return config
}
