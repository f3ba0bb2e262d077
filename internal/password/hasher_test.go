package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_ProducesVerifiableHash(t *testing.T) {
	h := NewHasher(4) // minimum cost keeps the test fast

	hash, err := h.Hash("password123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, h.Verify("password123", hash))
}

func TestHash_SaltedHashesDiffer(t *testing.T) {
	h := NewHasher(4)

	first, err := h.Hash("password123")
	require.NoError(t, err)
	second, err := h.Hash("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHash_TooLong(t *testing.T) {
	h := NewHasher(4)

	_, err := h.Hash(strings.Repeat("x", 73))
	assert.Error(t, err)
}

func TestVerify_WrongPassword(t *testing.T) {
	h := NewHasher(4)

	hash, err := h.Hash("password123")
	require.NoError(t, err)

	assert.ErrorIs(t, h.Verify("wrong-password", hash), ErrMismatch)
}

func TestVerify_MalformedHash(t *testing.T) {
	h := NewHasher(4)

	err := h.Verify("password123", "not-a-bcrypt-hash")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMismatch)
}

func TestNewHasher_CostOutOfRangeFallsBack(t *testing.T) {
	h := NewHasher(99)

	hash, err := h.Hash("password123")
	require.NoError(t, err)
	assert.NoError(t, h.Verify("password123", hash))
}
