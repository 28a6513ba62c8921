package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("user-1", "a@example.com", "customer", time.Minute)
	require.NoError(t, err)

	claims, err := ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)
}

func TestExpiredAccessToken(t *testing.T) {
	token, err := GenerateAccessToken("user-1", "a@example.com", "customer", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractClaimsFromToken(token)
	assert.Error(t, err)
}

func TestRefreshTokenNotUsableAsAccess(t *testing.T) {
	refresh, err := GenerateRefreshToken("user-1", time.Hour)
	require.NoError(t, err)

	_, err = ExtractClaimsFromToken(refresh)
	assert.Error(t, err)

	sub, err := ExtractRefreshSubject(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
}

func TestAccessTokenNotUsableAsRefresh(t *testing.T) {
	access, err := GenerateAccessToken("user-1", "a@example.com", "customer", time.Minute)
	require.NoError(t, err)

	_, err = ExtractRefreshSubject(access)
	assert.Error(t, err)
}

func TestHashToken(t *testing.T) {
	h := HashToken("some-token")
	assert.Len(t, h, 64)
	assert.Equal(t, h, HashToken("some-token"))
	assert.NotEqual(t, h, HashToken("other-token"))
}

func TestTamperedToken(t *testing.T) {
	token, err := GenerateAccessToken("user-1", "a@example.com", "customer", time.Minute)
	require.NoError(t, err)

	_, err = ExtractClaimsFromToken(token + "x")
	assert.Error(t, err)
}
