package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(42, "owner@example.com", true)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.True(t, claims.IsBusinessUser)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	token, err := GenerateToken(1, "user@example.com", false)
	assert.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)
}
