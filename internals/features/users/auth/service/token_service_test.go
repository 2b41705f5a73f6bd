package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizku_backend/internals/configs"
)

func setTestSecret(t *testing.T) {
	t.Helper()
	configs.JWTSecret = "test-secret"
	configs.TokenTTL = time.Hour
}

func TestIssueAndParseAccessToken(t *testing.T) {
	setTestSecret(t)

	token, err := IssueAccessToken(42, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestParseExpiredToken(t *testing.T) {
	setTestSecret(t)

	token, err := issueToken(42, "user@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseInvalidToken(t *testing.T) {
	setTestSecret(t)

	_, err := ParseAccessToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	// Token signed with a different secret is invalid, not expired.
	configs.JWTSecret = "other-secret"
	token, err := IssueAccessToken(1, "")
	require.NoError(t, err)

	configs.JWTSecret = "test-secret"
	_, err = ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
