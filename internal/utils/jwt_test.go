package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigningMethodMapping(t *testing.T) {
	assert.Equal(t, jwt.SigningMethodHS256, SigningMethod("HS256"))
	assert.Equal(t, jwt.SigningMethodHS384, SigningMethod("HS384"))
	assert.Equal(t, jwt.SigningMethodHS512, SigningMethod("HS512"))
	// Unknown names fall back to HS256 rather than failing open.
	assert.Equal(t, jwt.SigningMethodHS256, SigningMethod("RS256"))
	assert.Equal(t, jwt.SigningMethodHS256, SigningMethod(""))
}

func TestNewAccessTokenClaims(t *testing.T) {
	const secret = "unit-test-secret"
	tok, err := NewAccessToken(secret, "HS256", 42, 15)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)

	parsed, err := jwt.Parse(tok.Token, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["sub"])
	assert.InDelta(t, time.Now().Add(15*time.Minute).Unix(), claims["exp"], 5)
	assert.WithinDuration(t, time.Now().UTC().Add(15*time.Minute), tok.Exp, 5*time.Second)
}

func TestNewRefreshToken(t *testing.T) {
	a, err := NewRefreshToken(7)
	require.NoError(t, err)
	b, err := NewRefreshToken(7)
	require.NoError(t, err)

	assert.Len(t, a.Raw, 96, "48 random bytes hex-encoded")
	assert.NotEqual(t, a.Raw, b.Raw)
	assert.WithinDuration(t, time.Now().UTC().Add(7*24*time.Hour), a.Exp, 5*time.Second)
}

func TestHashRefreshRawIsDeterministic(t *testing.T) {
	h1 := HashRefreshRaw("some-raw-token")
	h2 := HashRefreshRaw("some-raw-token")
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64, "sha256 hex digest")
	assert.NotEqual(t, h1, HashRefreshRaw("another-raw-token"))
}
