package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budzetiranje/budget_tracking_app/internal/utils"
)

func TestHashPassword(t *testing.T) {
	hash, err := utils.HashPassword("secret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-password", hash)

	assert.True(t, utils.CheckPasswordHash("secret-password", hash))
	assert.False(t, utils.CheckPasswordHash("wrong-password", hash))
}

func TestHashOpaqueToken(t *testing.T) {
	hash := utils.HashOpaqueToken("some-token")
	assert.Len(t, hash, 64) // hex-encoded SHA256
	assert.Equal(t, hash, utils.HashOpaqueToken("some-token"))

	assert.True(t, utils.CompareOpaqueTokenHash("some-token", hash))
	assert.False(t, utils.CompareOpaqueTokenHash("other-token", hash))
}

func TestGenerateSecureRandomString(t *testing.T) {
	first, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)
	assert.Len(t, first, 64)

	second, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	_, err = utils.GenerateSecureRandomString(0)
	assert.Error(t, err)
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "admin", "secret", time.Hour, "issuer")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "admin", claims.Role)

	_, err = utils.ParseAndValidateJWT(token, "not-the-secret")
	assert.Error(t, err)
}
