// Package impl contains the concrete application services behind the
// usecase interfaces.
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

type authService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokens   service.TokenService
	logger   *slog.Logger
}

// NewAuthService creates a new authentication service instance.
func NewAuthService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register creates a normal-role account and signs the caller in.
func (s *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthResult, error) {
	if err := s.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	// Advisory pre-check; the unique index remains the authoritative guard.
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
		Role:     entity.RoleNormal,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	s.logger.InfoContext(ctx, "user registered",
		slog.Uint64("userID", uint64(user.ID)),
		slog.String("email", user.Email),
	)

	return &usecase.AuthResult{Token: token, User: sanitize(user)}, nil
}

// Login verifies the credentials and issues a fresh token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, err
	}

	if !s.hasher.Check(input.Password, user.Password) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	s.logger.InfoContext(ctx, "user logged in",
		slog.Uint64("userID", uint64(user.ID)),
		slog.String("role", user.Role.String()),
	)

	return &usecase.AuthResult{Token: token, User: sanitize(user)}, nil
}

// GetProfile returns the full stored profile of the authenticated user.
func (s *authService) GetProfile(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	return sanitize(user), nil
}

// sanitize strips the password hash before the entity leaves the
// application layer.
func sanitize(user *entity.User) *entity.User {
	if user == nil {
		return nil
	}

	cleaned := *user
	cleaned.Password = ""

	return &cleaned
}
