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

type ratingServiceFixtures struct {
	service    usecase.RatingUsecase
	ratingRepo *mockRepo.MockRatingRepository
	storeRepo  *mockRepo.MockStoreRepository
}

func createTestRatingService(t *testing.T) ratingServiceFixtures {
	t.Helper()

	ratingRepo := &mockRepo.MockRatingRepository{}
	storeRepo := &mockRepo.MockStoreRepository{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return ratingServiceFixtures{
		service:    NewRatingService(ratingRepo, storeRepo, logger),
		ratingRepo: ratingRepo,
		storeRepo:  storeRepo,
	}
}

func TestRatingService_SubmitRating_Success(t *testing.T) {
	fx := createTestRatingService(t)
	ctx := context.Background()

	actor := &entity.User{ID: 2, Role: entity.RoleNormal}

	fx.storeRepo.On("FindByID", ctx, uint(1)).Return(&entity.Store{ID: 1}, nil)
	fx.ratingRepo.On("Upsert", ctx, mock.AnythingOfType("*entity.Rating")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Rating).ID = 11
		}).
		Return(nil)

	rating, err := fx.service.SubmitRating(ctx, actor, &usecase.SubmitRatingInput{StoreID: 1, Rating: 5})

	require.NoError(t, err)
	assert.Equal(t, uint(11), rating.ID)
	// The author comes from the verified actor, not the payload.
	assert.Equal(t, uint(2), rating.UserID)
}

func TestRatingService_SubmitRating_OutOfRange(t *testing.T) {
	fx := createTestRatingService(t)
	ctx := context.Background()

	actor := &entity.User{ID: 2}

	for _, value := range []int{0, 6, -1, 100} {
		_, err := fx.service.SubmitRating(ctx, actor, &usecase.SubmitRatingInput{StoreID: 1, Rating: value})
		assert.ErrorIs(t, err, domainerrors.ErrRatingOutOfRange)
	}

	fx.storeRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	fx.ratingRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestRatingService_SubmitRating_StoreMissing(t *testing.T) {
	fx := createTestRatingService(t)
	ctx := context.Background()

	fx.storeRepo.On("FindByID", ctx, uint(99)).Return(nil, repository.ErrStoreNotFound)

	_, err := fx.service.SubmitRating(ctx, &entity.User{ID: 2}, &usecase.SubmitRatingInput{StoreID: 99, Rating: 3})

	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestRatingService_GetOwnRating_NoneIsNil(t *testing.T) {
	fx := createTestRatingService(t)
	ctx := context.Background()

	fx.ratingRepo.On("FindByUserAndStore", ctx, uint(2), uint(1)).Return(nil, repository.ErrRatingNotFound)

	rating, err := fx.service.GetOwnRating(ctx, 2, 1)

	require.NoError(t, err)
	assert.Nil(t, rating)
}

func TestRatingService_ListStoreRatings(t *testing.T) {
	fx := createTestRatingService(t)
	ctx := context.Background()

	fx.storeRepo.On("FindByID", ctx, uint(1)).Return(&entity.Store{ID: 1}, nil)
	fx.ratingRepo.On("FindByStore", ctx, uint(1)).Return([]*entity.Rating{
		{ID: 1, UserID: 2, StoreID: 1, Rating: 5, UserName: "John Doe Normal User Account"},
	}, nil)

	ratings, err := fx.service.ListStoreRatings(ctx, 1)

	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, "John Doe Normal User Account", ratings[0].UserName)
}
