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
	"ratehub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type storeServiceFixtures struct {
	service   usecase.StoreUsecase
	storeRepo *mockRepo.MockStoreRepository
	userRepo  *mockRepo.MockUserRepository
}

func createTestStoreService(t *testing.T) storeServiceFixtures {
	t.Helper()

	storeRepo := &mockRepo.MockStoreRepository{}
	userRepo := &mockRepo.MockUserRepository{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return storeServiceFixtures{
		service:   NewStoreService(storeRepo, userRepo, logger),
		storeRepo: storeRepo,
		userRepo:  userRepo,
	}
}

func TestStoreService_CreateStore_WithOwner(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	ownerID := uint(3)
	input := &usecase.CreateStoreInput{
		Name:    "Electronics Paradise Store",
		Email:   "contact@electronics.com",
		Address: "100 Electronics Way",
		OwnerID: &ownerID,
	}

	fx.userRepo.On("FindByID", ctx, ownerID).Return(&entity.User{ID: ownerID}, nil)
	fx.storeRepo.On("FindByEmail", ctx, "contact@electronics.com").Return(nil, repository.ErrStoreNotFound)
	fx.storeRepo.On("Create", ctx, mock.AnythingOfType("*entity.Store")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Store).ID = 1
		}).
		Return(nil)

	store, err := fx.service.CreateStore(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, uint(1), store.ID)
	require.NotNil(t, store.OwnerID)
	assert.Equal(t, ownerID, *store.OwnerID)
}

func TestStoreService_CreateStore_WithoutOwner(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.On("FindByEmail", ctx, "new@store.com").Return(nil, repository.ErrStoreNotFound)
	fx.storeRepo.On("Create", ctx, mock.AnythingOfType("*entity.Store")).Return(nil)

	store, err := fx.service.CreateStore(ctx, &usecase.CreateStoreInput{
		Name:  "Ownerless Store",
		Email: "new@store.com",
	})

	require.NoError(t, err)
	assert.Nil(t, store.OwnerID)
	fx.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestStoreService_CreateStore_UnknownOwner(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	ownerID := uint(404)
	fx.userRepo.On("FindByID", ctx, ownerID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.CreateStore(ctx, &usecase.CreateStoreInput{
		Email:   "x@store.com",
		OwnerID: &ownerID,
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestStoreService_CreateStore_DuplicateEmail(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.On("FindByEmail", ctx, "contact@electronics.com").
		Return(&entity.Store{ID: 1}, nil)

	_, err := fx.service.CreateStore(ctx, &usecase.CreateStoreInput{
		Email: "contact@electronics.com",
	})

	assert.ErrorIs(t, err, domainerrors.ErrStoreEmailAlreadyExists)
}

func TestStoreService_GetStore_ByID(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.On("FindByID", ctx, uint(1)).
		Return(&entity.Store{ID: 1, AverageRating: 4.5, TotalRatings: 2}, nil)

	store, err := fx.service.GetStore(ctx, 1, "")

	require.NoError(t, err)
	assert.InDelta(t, 4.5, store.AverageRating, 0.0001)
	assert.Equal(t, int64(2), store.TotalRatings)
}

func TestStoreService_GetStore_FallsBackToEmail(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.On("FindByID", ctx, uint(0)).Return(nil, repository.ErrStoreNotFound)
	fx.storeRepo.On("FindByEmail", ctx, "info@fashion.com").
		Return(&entity.Store{ID: 2, Email: "info@fashion.com"}, nil)

	store, err := fx.service.GetStore(ctx, 0, "info@fashion.com")

	require.NoError(t, err)
	assert.Equal(t, uint(2), store.ID)
}

func TestStoreService_GetStore_NotFound(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.On("FindByID", ctx, uint(99)).Return(nil, repository.ErrStoreNotFound)

	_, err := fx.service.GetStore(ctx, 99, "")

	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestStoreService_GetStoreDetails(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.On("FindByID", ctx, uint(1)).Return(&entity.Store{ID: 1}, nil)
	fx.storeRepo.On("FindRaters", ctx, uint(1)).Return([]*entity.StoreRater{
		{UserID: 2, Name: "John", Rating: 5},
	}, nil)

	details, err := fx.service.GetStoreDetails(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, uint(1), details.Store.ID)
	require.Len(t, details.Raters, 1)
	assert.Equal(t, 5, details.Raters[0].Rating)
}
