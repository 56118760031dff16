// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"ratehub/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserFilter narrows and orders FindAll results. Name, Email and Address are
// case-insensitive substring matches and combine independently; Role is an
// exact match. SortBy must name a whitelisted column or it is ignored.
type UserFilter struct {
	Name      string
	Email     string
	Address   string
	Role      entity.Role
	SortBy    string
	SortOrder string
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user. The storage-level unique constraint on
	// email is the authoritative duplicate guard.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address,
	// including the password hash (needed for login).
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll lists users matching the filter. Password hashes are not
	// selected.
	FindAll(ctx context.Context, filter UserFilter) ([]*entity.User, error)

	// UpdatePassword replaces the stored hash and reports the number of
	// affected rows; zero means no such user.
	UpdatePassword(ctx context.Context, id uint, hashedPassword string) (int64, error)

	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)
}
