package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Low cost keeps the suite fast; verification is cost-agnostic.
var testHasher = BcryptHasher{Cost: 4}

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 70)},
		{"empty password", ""},
		{"unicode password", "пароль🔒密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := testHasher.Hash(tt.password)
			require.NoError(t, err)
			require.NotEmpty(t, hash)
			require.True(t, strings.HasPrefix(hash, "$2a$"),
				"hash should be in bcrypt modular crypt format")
			require.NotContains(t, hash, tt.password)
		})
	}
}

func TestHash_UniqueSalts(t *testing.T) {
	password := "samepassword"

	hash1, err := testHasher.Hash(password)
	require.NoError(t, err)

	hash2, err := testHasher.Hash(password)
	require.NoError(t, err)

	require.NotEqual(t, hash1, hash2, "hashes should differ due to unique salts")

	require.True(t, testHasher.Verify(password, hash1))
	require.True(t, testHasher.Verify(password, hash2))
}

func TestVerify_WrongPassword(t *testing.T) {
	hash, err := testHasher.Hash("correct-password")
	require.NoError(t, err)

	tests := []struct {
		name          string
		wrongPassword string
	}{
		{"completely wrong", "wrong-password"},
		{"case difference", "Correct-Password"},
		{"extra space", "correct-password "},
		{"empty password", ""},
		{"truncated", "correct-passwor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.False(t, testHasher.Verify(tt.wrongPassword, hash))
		})
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	tests := []struct {
		name        string
		invalidHash string
	}{
		{"empty hash", ""},
		{"not a hash", "plaintext"},
		{"wrong scheme", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"truncated bcrypt", "$2a$12$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Malformed hashes report a mismatch, same as a wrong password.
			require.False(t, testHasher.Verify("any-password", tt.invalidHash))
		})
	}
}

func TestHash_InputBeyondByteLimit(t *testing.T) {
	// bcrypt caps input at 72 bytes, not 72 characters; a multibyte string
	// can stay under the character ceiling and still exceed it.
	_, err := testHasher.Hash(strings.Repeat("é", 72))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrHashUnavailable)
}

func TestHash_CostTooHigh(t *testing.T) {
	h := BcryptHasher{Cost: 99}
	_, err := h.Hash("password")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrHashUnavailable)
}

func TestDefaultCost(t *testing.T) {
	// The zero value must hash at the documented work factor.
	var h BcryptHasher
	hash, err := h.Hash("pw")
	require.NoError(t, err)
	require.Contains(t, hash, "$12$")
}
