package usecase

import (
	"context"

	"ratehub/internal/domain/entity"
	"ratehub/internal/domain/repository"
)

// TransactionPage is one page of the listing plus its pagination envelope.
type TransactionPage struct {
	Transactions []*entity.Transaction `json:"transactions"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
	TotalPages   int                   `json:"totalPages"`
}

// CombinedReport bundles the three aggregations of one month into a single
// response.
type CombinedReport struct {
	Statistics *entity.TransactionStatistics `json:"statistics"`
	BarChart   []*entity.PriceRangeCount     `json:"barChart"`
	PieChart   []*entity.CategoryCount       `json:"pieChart"`
}

// TransactionUsecase covers the read-only sales-record reporting.
type TransactionUsecase interface {
	// ListTransactions returns one page with pagination metadata.
	ListTransactions(ctx context.Context, query repository.TransactionQuery) (*TransactionPage, error)

	// GetStatistics returns sold/unsold totals, optionally month-scoped.
	GetStatistics(ctx context.Context, month int) (*entity.TransactionStatistics, error)

	// GetBarChart returns counts for the ten fixed price bands.
	GetBarChart(ctx context.Context, month int) ([]*entity.PriceRangeCount, error)

	// GetPieChart returns per-category counts.
	GetPieChart(ctx context.Context, month int) ([]*entity.CategoryCount, error)

	// GetCombinedReport bundles statistics, bar chart and pie chart.
	GetCombinedReport(ctx context.Context, month int) (*CombinedReport, error)
}
