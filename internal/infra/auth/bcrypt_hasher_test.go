package auth

import (
	"testing"

	"ratehub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHasher() *bcryptHasher {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        16,
			RequireUppercase: true,
			RequireSpecial:   true,
		},
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newHasher()

	hash, err := hasher.Hash("Password1!")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Password1!", hash)

	assert.True(t, hasher.Check("Password1!", hash))
	assert.False(t, hasher.Check("password1!", hash))
	assert.False(t, hasher.Check("Password1!", "not-a-hash"))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newHasher()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid", password: "Password1!", wantErr: false},
		{name: "too short", password: "Pw1!", wantErr: true},
		{name: "too long", password: "Password1!Password1!", wantErr: true},
		{name: "no uppercase", password: "password1!", wantErr: true},
		{name: "no special", password: "Password12", wantErr: true},
		{name: "minimum length boundary", password: "Abcdef1!", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
