package impl

import (
	"context"
	"testing"

	"ratehub/internal/domain/entity"
	"ratehub/internal/domain/repository"
	mockRepo "ratehub/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionService_ListTransactions_PageMath(t *testing.T) {
	txRepo := &mockRepo.MockTransactionRepository{}
	service := NewTransactionService(txRepo)
	ctx := context.Background()

	query := repository.TransactionQuery{Page: 2, Limit: 10, Search: "phone", Month: 3}
	txRepo.On("FindPage", ctx, query).
		Return([]*entity.Transaction{{ID: 11}, {ID: 12}}, int64(25), nil)

	page, err := service.ListTransactions(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.Limit)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Transactions, 2)
}

func TestTransactionService_ListTransactions_ClampsBounds(t *testing.T) {
	txRepo := &mockRepo.MockTransactionRepository{}
	service := NewTransactionService(txRepo)
	ctx := context.Background()

	clamped := repository.TransactionQuery{Page: 1, Limit: defaultPageLimit}
	txRepo.On("FindPage", ctx, clamped).Return([]*entity.Transaction{}, int64(0), nil)

	page, err := service.ListTransactions(ctx, repository.TransactionQuery{Page: -3, Limit: 0})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, defaultPageLimit, page.Limit)
	assert.Equal(t, 0, page.TotalPages)
}

func TestTransactionService_GetCombinedReport(t *testing.T) {
	txRepo := &mockRepo.MockTransactionRepository{}
	service := NewTransactionService(txRepo)
	ctx := context.Background()

	stats := &entity.TransactionStatistics{TotalSaleAmount: 1500, TotalSoldItems: 3, TotalNotSoldItems: 2}
	bars := []*entity.PriceRangeCount{{Range: "0-100", Count: 1}}
	pies := []*entity.CategoryCount{{Category: "electronics", Count: 4}}

	txRepo.On("Statistics", ctx, 6).Return(stats, nil)
	txRepo.On("BarChart", ctx, 6).Return(bars, nil)
	txRepo.On("PieChart", ctx, 6).Return(pies, nil)

	report, err := service.GetCombinedReport(ctx, 6)

	require.NoError(t, err)
	assert.Equal(t, stats, report.Statistics)
	assert.Equal(t, bars, report.BarChart)
	assert.Equal(t, pies, report.PieChart)
}
