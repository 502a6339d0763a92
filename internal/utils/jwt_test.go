// internal/utils/jwt_test.go
package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateSessionToken(42, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "42", claims.Subject)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	SetJWTSecret("test-secret")
	token, err := GenerateSessionToken(42, time.Hour)
	require.NoError(t, err)

	SetJWTSecret("different-secret")
	_, err = ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestSessionTokenExpired(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateSessionToken(42, -time.Minute)
	require.NoError(t, err)

	_, err = ValidateSessionToken(token)
	assert.Error(t, err)
}
