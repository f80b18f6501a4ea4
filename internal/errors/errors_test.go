package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthenticationSentinelMessages(t *testing.T) {
	// These strings are part of the HTTP contract for 401 responses.
	assert.Equal(t, "No token", ErrNoToken.Error())
	assert.Equal(t, "Invalid token", ErrInvalidToken.Error())
}

func TestValidationSentinelMessages(t *testing.T) {
	assert.Equal(t, "validation error: Name, email, and message are required.", ErrContactFieldsMissing.Error())
	assert.Equal(t, "validation error: Title and description are required.", ErrProjectFieldsMissing.Error())
	assert.Equal(t, "validation error: Title and content are required.", ErrBlogPostFieldsMissing.Error())
}

func TestValidationErrorWithField(t *testing.T) {
	err := &ValidationError{Field: "email", Message: "must be a valid address"}
	assert.Equal(t, "validation error: email - must be a valid address", err.Error())
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(ErrContactFieldsMissing))
	assert.True(t, IsValidation(fmt.Errorf("create failed: %w", ErrProjectFieldsMissing)))
	assert.False(t, IsValidation(ErrInvalidToken))
	assert.False(t, IsValidation(nil))
}
