package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, VerifyPassword(hash, "correct horse battery staple"))
	assert.False(t, VerifyPassword(hash, "wrong password"))
	assert.False(t, VerifyPassword("not-a-bcrypt-hash", "anything"))
}

func TestHashPasswordSalts(t *testing.T) {
	h1, err := HashPassword("samepassword", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("samepassword", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2, "each hash carries its own salt")
}
