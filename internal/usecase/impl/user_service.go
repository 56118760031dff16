package impl

import (
	"context"
	"log/slog"

	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/repository"
	"ratehub/internal/domain/service"
	"ratehub/internal/errors"
	"ratehub/internal/usecase"
)

type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// NewUserService creates a new user management service instance.
func NewUserService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// CreateUser creates an account with an explicit role. Admin only; the
// handler enforces the role gate.
func (s *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	if !input.Role.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be one of admin, normal, store_owner")
	}
	if err := s.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed
	}

	user := &entity.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hash,
		Address:  input.Address,
		Role:     input.Role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "user created by admin",
		slog.Uint64("userID", uint64(user.ID)),
		slog.String("role", user.Role.String()),
	)

	return sanitize(user), nil
}

// ListUsers lists accounts matching the filter.
func (s *userService) ListUsers(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error) {
	users, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	for i, user := range users {
		users[i] = sanitize(user)
	}

	return users, nil
}

// GetUser retrieves one account by id.
func (s *userService) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	return sanitize(user), nil
}

// UpdatePassword replaces the password of the target account. The actor must
// be the target user or an admin.
func (s *userService) UpdatePassword(ctx context.Context, actor *entity.User, targetID uint, input *usecase.UpdatePasswordInput) error {
	if actor.ID != targetID && actor.Role != entity.RoleAdmin {
		return domainerrors.ErrOwnPasswordOnly
	}

	if err := s.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed
	}

	affected, err := s.userRepo.UpdatePassword(ctx, targetID, hash)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domainerrors.ErrUserNotFound
	}

	s.logger.InfoContext(ctx, "password updated",
		slog.Uint64("targetID", uint64(targetID)),
		slog.Uint64("actorID", uint64(actor.ID)),
	)

	return nil
}
