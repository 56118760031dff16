package usecase

import (
	"context"

	"ratehub/internal/domain/entity"
	"ratehub/internal/domain/repository"
)

// CreateUserInput is the admin-only account creation payload. Unlike public
// registration it carries an explicit role.
type CreateUserInput struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Address  string      `json:"address"`
	Role     entity.Role `json:"role"`
}

// UpdatePasswordInput carries the new plaintext password for hashing.
type UpdatePasswordInput struct {
	Password string `json:"password"`
}

// UserUsecase covers admin account management plus the self-service
// password change.
type UserUsecase interface {
	// CreateUser creates an account with an explicit role. Admin only.
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// ListUsers lists accounts matching the filter. Admin only.
	ListUsers(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error)

	// GetUser retrieves one account by id. Admin only.
	GetUser(ctx context.Context, id uint) (*entity.User, error)

	// UpdatePassword replaces the password of the target account. The
	// actor must be the target user or an admin.
	UpdatePassword(ctx context.Context, actor *entity.User, targetID uint, input *UpdatePasswordInput) error
}
