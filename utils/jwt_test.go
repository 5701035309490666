package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "ADMIN", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "ADMIN", role)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "USER", -time.Minute)
	require.NoError(t, err)

	_, _, err = ExtractClaimsFromToken(token)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "USER", time.Hour)
	require.NoError(t, err)

	_, _, err = ExtractClaimsFromToken(token + "x")
	assert.Error(t, err)
}

func TestHashTokenDeterministic(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}
