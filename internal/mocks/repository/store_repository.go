package repository

import (
	"context"

	"ratehub/internal/domain/entity"
	"ratehub/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockStoreRepository is a testify mock of repository.StoreRepository.
type MockStoreRepository struct {
	mock.Mock
}

var _ repository.StoreRepository = (*MockStoreRepository)(nil)

func (m *MockStoreRepository) Create(ctx context.Context, store *entity.Store) error {
	args := m.Called(ctx, store)

	return args.Error(0)
}

func (m *MockStoreRepository) FindAll(ctx context.Context, filter repository.StoreFilter) ([]*entity.Store, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Store), args.Error(1)
}

func (m *MockStoreRepository) FindByID(ctx context.Context, id uint) (*entity.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Store), args.Error(1)
}

func (m *MockStoreRepository) FindByEmail(ctx context.Context, email string) (*entity.Store, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Store), args.Error(1)
}

func (m *MockStoreRepository) FindRaters(ctx context.Context, storeID uint) ([]*entity.StoreRater, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.StoreRater), args.Error(1)
}

func (m *MockStoreRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}
