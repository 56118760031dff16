package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/repository"
	mockRepo "ratehub/internal/mocks/repository"
	mockService "ratehub/internal/mocks/service"
	"ratehub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service  usecase.AuthUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockService.MockPasswordHasher
	tokens   *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	userRepo := &mockRepo.MockUserRepository{}
	hasher := &mockService.MockPasswordHasher{}
	tokens := &mockService.MockTokenService{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return authServiceFixtures{
		service:  NewAuthService(userRepo, hasher, tokens, logger),
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Name:     "Jonathan Doe Example Person",
		Email:    "jon@example.com",
		Password: "Password1!",
		Address:  "1 Example Road",
	}

	fx.hasher.On("ValidatePasswordStrength", "Password1!").Return(nil)
	fx.userRepo.On("FindByEmail", ctx, "jon@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", "Password1!").Return("hashed", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = 7
		}).
		Return(nil)
	fx.tokens.On("GenerateToken", mock.AnythingOfType("*entity.User")).Return("token-xyz", nil)

	result, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "token-xyz", result.Token)
	assert.Equal(t, uint(7), result.User.ID)
	assert.Equal(t, entity.RoleNormal, result.User.Role)
	assert.Empty(t, result.User.Password)
	fx.userRepo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.On("ValidatePasswordStrength", "Password1!").Return(nil)
	fx.userRepo.On("FindByEmail", ctx, "taken@example.com").
		Return(&entity.User{ID: 1, Email: "taken@example.com"}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "Password1!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.On("ValidatePasswordStrength", "weak").Return(domainerrors.ErrPasswordStrength)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "a@b.c", Password: "weak"})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	fx.userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	stored := &entity.User{
		ID:       3,
		Email:    "jane@store.com",
		Password: "stored-hash",
		Role:     entity.RoleStoreOwner,
	}

	fx.userRepo.On("FindByEmail", ctx, "jane@store.com").Return(stored, nil)
	fx.hasher.On("Check", "Store123!", "stored-hash").Return(true)
	fx.tokens.On("GenerateToken", stored).Return("token-abc", nil)

	result, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "jane@store.com",
		Password: "Store123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-abc", result.Token)
	assert.Empty(t, result.User.Password)
	assert.Equal(t, entity.RoleStoreOwner, result.User.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	stored := &entity.User{ID: 3, Email: "jane@store.com", Password: "stored-hash"}

	fx.userRepo.On("FindByEmail", ctx, "jane@store.com").Return(stored, nil)
	fx.hasher.On("Check", "wrong", "stored-hash").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "jane@store.com", Password: "wrong"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	// Unknown email must be indistinguishable from a wrong password.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_GetProfile_StripsPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByID", ctx, uint(5)).
		Return(&entity.User{ID: 5, Email: "me@example.com", Password: "hash"}, nil)

	user, err := fx.service.GetProfile(ctx, 5)

	require.NoError(t, err)
	assert.Empty(t, user.Password)
	assert.Equal(t, "me@example.com", user.Email)
}

func TestAuthService_GetProfile_NotFound(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByID", ctx, uint(99)).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, 99)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
