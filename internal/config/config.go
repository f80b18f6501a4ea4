package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds all application configuration for the portfolio backend
type Config struct {
	DatabaseURL   string `mapstructure:"database_url"`
	Port          string `mapstructure:"port"`
	AllowedOrigin string `mapstructure:"allowed_origin"`
	SeedDataDir   string `mapstructure:"seed_data_dir"`
}

// Load reads configuration from an optional config file and the environment.
// Environment variables take precedence over file values.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, use defaults and environment variables
	}

	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Explicit env overrides for the variables the deployment sets
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		config.DatabaseURL = dsn
	}
	if port := os.Getenv("PORT"); port != "" {
		config.Port = port
	}
	if origin := os.Getenv("ALLOWED_ORIGIN"); origin != "" {
		config.AllowedOrigin = origin
	}
	if seedDir := os.Getenv("SEED_DATA_DIR"); seedDir != "" {
		config.SeedDataDir = seedDir
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Validate checks that required configuration values are present
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("database URL is required")
	}
	if c.Port == "" {
		c.Port = "5000"
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "5000")
	v.SetDefault("allowed_origin", "http://localhost:3000")
	// No default database URL - must be provided via environment variable
	v.SetDefault("seed_data_dir", "")
}
