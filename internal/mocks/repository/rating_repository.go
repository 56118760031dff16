package repository

import (
	"context"

	"ratehub/internal/domain/entity"
	"ratehub/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockRatingRepository is a testify mock of repository.RatingRepository.
type MockRatingRepository struct {
	mock.Mock
}

var _ repository.RatingRepository = (*MockRatingRepository)(nil)

func (m *MockRatingRepository) Upsert(ctx context.Context, rating *entity.Rating) error {
	args := m.Called(ctx, rating)

	return args.Error(0)
}

func (m *MockRatingRepository) FindByUserAndStore(ctx context.Context, userID, storeID uint) (*entity.Rating, error) {
	args := m.Called(ctx, userID, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Rating), args.Error(1)
}

func (m *MockRatingRepository) FindByStore(ctx context.Context, storeID uint) ([]*entity.Rating, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Rating), args.Error(1)
}

func (m *MockRatingRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}
