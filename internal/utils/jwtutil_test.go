package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, exp, err := GenerateToken(secret, "user-1", "budi", "kasir", time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	claims, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserId)
	assert.Equal(t, "budi", claims.Username)
	assert.Equal(t, "kasir", claims.Role)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, _, err := GenerateToken([]byte("secret-a"), "user-1", "budi", "kasir", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken([]byte("secret-b"), token)
	assert.Error(t, err)
}

func TestParseExpiredToken(t *testing.T) {
	secret := []byte("test-secret")
	token, _, err := GenerateToken(secret, "user-1", "budi", "kasir", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, token)
	assert.Error(t, err)
}
