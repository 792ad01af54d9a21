package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, BcryptCost, cost)
}

func TestComparePassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	match, err := ComparePassword("secret1", hash)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = ComparePassword("wrong", hash)
	require.NoError(t, err, "a mismatch is not an error")
	assert.False(t, match)
}

func TestComparePasswordNoHash(t *testing.T) {
	_, err := ComparePassword("secret1", "")
	assert.ErrorIs(t, err, ErrNoHash)
}

func TestHashPasswordIfChanged(t *testing.T) {
	t.Run("empty plaintext keeps stored value", func(t *testing.T) {
		hash, err := HashPasswordIfChanged("stored-hash", "")
		require.NoError(t, err)
		assert.Equal(t, "stored-hash", hash)
	})

	t.Run("no stored hash produces a fresh hash", func(t *testing.T) {
		hash, err := HashPasswordIfChanged("", "secret1")
		require.NoError(t, err)

		match, err := ComparePassword("secret1", hash)
		require.NoError(t, err)
		assert.True(t, match)
	})

	t.Run("matching plaintext keeps the existing hash", func(t *testing.T) {
		stored, err := HashPassword("secret1")
		require.NoError(t, err)

		hash, err := HashPasswordIfChanged(stored, "secret1")
		require.NoError(t, err)
		assert.Equal(t, stored, hash)
	})

	t.Run("changed plaintext rehashes", func(t *testing.T) {
		stored, err := HashPassword("secret1")
		require.NoError(t, err)

		hash, err := HashPasswordIfChanged(stored, "different")
		require.NoError(t, err)
		assert.NotEqual(t, stored, hash)

		match, err := ComparePassword("different", hash)
		require.NoError(t, err)
		assert.True(t, match)
	})
}

func TestNewApprovalToken(t *testing.T) {
	ttl := 48 * time.Hour
	before := time.Now()
	token, expires := NewApprovalToken(ttl)

	assert.NotEmpty(t, token)
	assert.True(t, expires.After(before.Add(ttl-time.Minute)))
	assert.True(t, expires.Before(before.Add(ttl+time.Minute)))

	other, _ := NewApprovalToken(ttl)
	assert.NotEqual(t, token, other)
}
