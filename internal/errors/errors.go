package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Authentication Errors
var (
	ErrNoToken      = &AuthenticationError{Message: "No token"}
	ErrInvalidToken = &AuthenticationError{Message: "Invalid token"}
)

// Configuration Errors
var (
	ErrProviderNotConfigured = &ConfigurationError{Message: "provider is not configured"}
)

// Validation Errors
var (
	ErrContactFieldsMissing  = &ValidationError{Message: "Name, email, and message are required."}
	ErrProjectFieldsMissing  = &ValidationError{Message: "Title and description are required."}
	ErrBlogPostFieldsMissing = &ValidationError{Message: "Title and content are required."}
)

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
