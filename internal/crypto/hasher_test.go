package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	h := NewBcryptHasher()

	hash, err := h.Hash("s3cret-pw")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-pw", hash)

	assert.NoError(t, h.Compare(hash, "s3cret-pw"))
	assert.Error(t, h.Compare(hash, "wrong-pw"))
}

func TestBcryptHasherHashesDiffer(t *testing.T) {
	h := NewBcryptHasher()

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	// salted: two hashes of the same input must not match
	assert.NotEqual(t, first, second)
}

func TestBcryptHasherMalformedHash(t *testing.T) {
	h := NewBcryptHasher()

	assert.Error(t, h.Compare("not-a-bcrypt-hash", "anything"))
	assert.Error(t, h.Compare("", "anything"))
}
