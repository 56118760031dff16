package auth

import (
	"testing"

	"ratehub/config"
	"ratehub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	user := &entity.User{
		ID:    42,
		Email: "owner@example.com",
		Role:  entity.RoleStoreOwner,
	}

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.Equal(t, entity.RoleStoreOwner, claims.Role)
}

func TestJWTService_ValidateToken_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_RejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("secret-a"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("secret-b"))
	require.NoError(t, err)

	token, err := issuer.GenerateToken(&entity.User{ID: 1, Email: "a@b.c", Role: entity.RoleNormal})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}
