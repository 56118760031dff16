// Package usecase defines the application-layer interfaces and their
// input/output DTOs. Handlers depend on these interfaces, never on the
// implementations.
package usecase

import (
	"context"

	"ratehub/internal/domain/entity"
)

// RegisterInput is the payload of public self-registration. Role is always
// forced to normal regardless of input.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

// LoginInput is the credential pair checked at login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is returned by both registration and login: the signed token
// plus a password-free view of the account.
type AuthResult struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// AuthUsecase covers the public authentication flows.
type AuthUsecase interface {
	// Register creates a normal-role account and signs the caller in.
	Register(ctx context.Context, input *RegisterInput) (*AuthResult, error)

	// Login verifies the credentials and issues a fresh token.
	Login(ctx context.Context, input *LoginInput) (*AuthResult, error)

	// GetProfile returns the full stored profile of the authenticated user.
	GetProfile(ctx context.Context, userID uint) (*entity.User, error)
}
