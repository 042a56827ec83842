package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewBcryptHasher(t *testing.T) {
	assert.Equal(t, bcrypt.MinCost, NewBcryptHasher(bcrypt.MinCost).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(bcrypt.MaxCost+1).cost)
}

func TestBcryptHasher_HashPassword(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "hashes password", password: "sketch-to-code"},
		{name: "empty password", password: "", wantErr: ErrEmptyPassword},
		{name: "72 bytes is accepted", password: strings.Repeat("a", 72)},
		{name: "73 bytes is rejected", password: strings.Repeat("a", 73), wantErr: ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hasher.HashPassword(tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hash)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hash)
			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			assert.Equal(t, bcrypt.MinCost, cost)
		})
	}
}

func TestBcryptHasher_ComparePassword(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.HashPassword("sketch-to-code")
	require.NoError(t, err)

	tests := []struct {
		name     string
		hash     string
		password string
		want     bool
	}{
		{name: "matching password", hash: hash, password: "sketch-to-code", want: true},
		{name: "wrong password", hash: hash, password: "code-to-sketch"},
		{name: "empty hash", hash: "", password: "sketch-to-code"},
		{name: "malformed hash", hash: "not-a-hash", password: "sketch-to-code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasher.ComparePassword(tt.hash, tt.password))
		})
	}
}
