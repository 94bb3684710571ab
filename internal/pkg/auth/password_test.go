package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Verifies(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, CheckPassword(hash, "secret1"))
	assert.False(t, CheckPassword(hash, "secret2"))
}

func TestHashPassword_SaltRandomization(t *testing.T) {
	first, err := HashPassword("secret1")
	require.NoError(t, err)

	second, err := HashPassword("secret1")
	require.NoError(t, err)

	// Same plaintext, different salts, different hashes
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword(first, "secret1"))
	assert.True(t, CheckPassword(second, "secret1"))
}

func TestCheckPassword_GarbageHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "secret1"))
	assert.False(t, CheckPassword("", "secret1"))
}
