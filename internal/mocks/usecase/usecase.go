// Package usecase provides testify mocks for the application-layer
// interfaces.
package usecase

import (
	"context"

	"ratehub/internal/domain/entity"
	"ratehub/internal/domain/repository"
	"ratehub/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a testify mock of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

var _ usecase.AuthUsecase = (*MockAuthUsecase)(nil)

func (m *MockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.AuthResult), args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.AuthResult), args.Error(1)
}

func (m *MockAuthUsecase) GetProfile(ctx context.Context, userID uint) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

// MockUserUsecase is a testify mock of usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

var _ usecase.UserUsecase = (*MockUserUsecase)(nil)

func (m *MockUserUsecase) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUsecase) ListUsers(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserUsecase) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUsecase) UpdatePassword(ctx context.Context, actor *entity.User, targetID uint, input *usecase.UpdatePasswordInput) error {
	args := m.Called(ctx, actor, targetID, input)

	return args.Error(0)
}

// MockStoreUsecase is a testify mock of usecase.StoreUsecase.
type MockStoreUsecase struct {
	mock.Mock
}

var _ usecase.StoreUsecase = (*MockStoreUsecase)(nil)

func (m *MockStoreUsecase) CreateStore(ctx context.Context, input *usecase.CreateStoreInput) (*entity.Store, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Store), args.Error(1)
}

func (m *MockStoreUsecase) ListStores(ctx context.Context, filter repository.StoreFilter) ([]*entity.Store, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Store), args.Error(1)
}

func (m *MockStoreUsecase) GetStore(ctx context.Context, id uint, email string) (*entity.Store, error) {
	args := m.Called(ctx, id, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Store), args.Error(1)
}

func (m *MockStoreUsecase) GetStoreDetails(ctx context.Context, id uint) (*usecase.StoreDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.StoreDetails), args.Error(1)
}

// MockRatingUsecase is a testify mock of usecase.RatingUsecase.
type MockRatingUsecase struct {
	mock.Mock
}

var _ usecase.RatingUsecase = (*MockRatingUsecase)(nil)

func (m *MockRatingUsecase) SubmitRating(ctx context.Context, actor *entity.User, input *usecase.SubmitRatingInput) (*entity.Rating, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Rating), args.Error(1)
}

func (m *MockRatingUsecase) GetOwnRating(ctx context.Context, userID, storeID uint) (*entity.Rating, error) {
	args := m.Called(ctx, userID, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Rating), args.Error(1)
}

func (m *MockRatingUsecase) ListStoreRatings(ctx context.Context, storeID uint) ([]*entity.Rating, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Rating), args.Error(1)
}

// MockTransactionUsecase is a testify mock of usecase.TransactionUsecase.
type MockTransactionUsecase struct {
	mock.Mock
}

var _ usecase.TransactionUsecase = (*MockTransactionUsecase)(nil)

func (m *MockTransactionUsecase) ListTransactions(ctx context.Context, query repository.TransactionQuery) (*usecase.TransactionPage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.TransactionPage), args.Error(1)
}

func (m *MockTransactionUsecase) GetStatistics(ctx context.Context, month int) (*entity.TransactionStatistics, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.TransactionStatistics), args.Error(1)
}

func (m *MockTransactionUsecase) GetBarChart(ctx context.Context, month int) ([]*entity.PriceRangeCount, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.PriceRangeCount), args.Error(1)
}

func (m *MockTransactionUsecase) GetPieChart(ctx context.Context, month int) ([]*entity.CategoryCount, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.CategoryCount), args.Error(1)
}

func (m *MockTransactionUsecase) GetCombinedReport(ctx context.Context, month int) (*usecase.CombinedReport, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.CombinedReport), args.Error(1)
}
