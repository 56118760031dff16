package impl

import (
	"context"

	"ratehub/internal/domain/entity"
	"ratehub/internal/domain/repository"
	"ratehub/internal/usecase"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

type transactionService struct {
	txRepo repository.TransactionRepository
}

// NewTransactionService creates a new transaction reporting service instance.
func NewTransactionService(txRepo repository.TransactionRepository) usecase.TransactionUsecase {
	return &transactionService{
		txRepo: txRepo,
	}
}

// ListTransactions returns one page with pagination metadata. Page and limit
// are clamped to sane bounds before they reach the query.
func (s *transactionService) ListTransactions(ctx context.Context, query repository.TransactionQuery) (*usecase.TransactionPage, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = defaultPageLimit
	}
	if query.Limit > maxPageLimit {
		query.Limit = maxPageLimit
	}

	transactions, total, err := s.txRepo.FindPage(ctx, query)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(query.Limit) - 1) / int64(query.Limit))

	return &usecase.TransactionPage{
		Transactions: transactions,
		Total:        total,
		Page:         query.Page,
		Limit:        query.Limit,
		TotalPages:   totalPages,
	}, nil
}

// GetStatistics returns sold/unsold totals, optionally month-scoped.
func (s *transactionService) GetStatistics(ctx context.Context, month int) (*entity.TransactionStatistics, error) {
	return s.txRepo.Statistics(ctx, month)
}

// GetBarChart returns counts for the ten fixed price bands.
func (s *transactionService) GetBarChart(ctx context.Context, month int) ([]*entity.PriceRangeCount, error) {
	return s.txRepo.BarChart(ctx, month)
}

// GetPieChart returns per-category counts.
func (s *transactionService) GetPieChart(ctx context.Context, month int) ([]*entity.CategoryCount, error) {
	return s.txRepo.PieChart(ctx, month)
}

// GetCombinedReport bundles the three aggregations of one month.
func (s *transactionService) GetCombinedReport(ctx context.Context, month int) (*usecase.CombinedReport, error) {
	stats, err := s.txRepo.Statistics(ctx, month)
	if err != nil {
		return nil, err
	}

	barChart, err := s.txRepo.BarChart(ctx, month)
	if err != nil {
		return nil, err
	}

	pieChart, err := s.txRepo.PieChart(ctx, month)
	if err != nil {
		return nil, err
	}

	return &usecase.CombinedReport{
		Statistics: stats,
		BarChart:   barChart,
		PieChart:   pieChart,
	}, nil
}
