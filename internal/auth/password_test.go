package auth_test

import (
	"testing"

	"github.com/dom/dev-network/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotContains(t, hash, "correct horse", "hash must not embed the plaintext")

	ok, err := auth.VerifyPassword("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHashPassword_SaltIsFresh(t *testing.T) {
	h1, err := auth.HashPassword("samepassword")
	require.NoError(t, err)
	h2, err := auth.HashPassword("samepassword")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "two hashes of the same password must differ")
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("password1")
	require.NoError(t, err)

	ok, err := auth.VerifyPassword("password2", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_CorruptHash(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{name: "empty", stored: ""},
		{name: "truncated", stored: "$2a$10$short"},
		{name: "not a bcrypt hash", stored: "plaintext-in-the-database"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := auth.VerifyPassword("anything", tt.stored)
			assert.False(t, ok)
			assert.ErrorIs(t, err, auth.ErrCorruptHash)
		})
	}
}
