package repository

import (
	"context"

	"ratehub/internal/domain/entity"
	"ratehub/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionRepository is a testify mock of repository.TransactionRepository.
type MockTransactionRepository struct {
	mock.Mock
}

var _ repository.TransactionRepository = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindPage(ctx context.Context, query repository.TransactionQuery) ([]*entity.Transaction, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionRepository) Statistics(ctx context.Context, month int) (*entity.TransactionStatistics, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.TransactionStatistics), args.Error(1)
}

func (m *MockTransactionRepository) BarChart(ctx context.Context, month int) ([]*entity.PriceRangeCount, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.PriceRangeCount), args.Error(1)
}

func (m *MockTransactionRepository) PieChart(ctx context.Context, month int) ([]*entity.CategoryCount, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.CategoryCount), args.Error(1)
}
