package repository

import (
	"context"

	"ratehub/internal/domain/entity"
)

// TransactionQuery scopes the paginated transaction listing. Page is
// 1-indexed. Search matches title, description or category as a
// case-insensitive substring OR. Month (1-12, 0 = unset) filters by calendar
// month of the sale date regardless of year.
type TransactionQuery struct {
	Page   int
	Limit  int
	Search string
	Month  int
}

// TransactionRepository exposes the read-only sales-record aggregations.
// Records are pre-populated; no write operation exists by design.
type TransactionRepository interface {
	// FindPage returns one page ordered by sale date descending, plus the
	// total number of matching rows.
	FindPage(ctx context.Context, query TransactionQuery) ([]*entity.Transaction, int64, error)

	// Statistics sums sold prices and counts sold/unsold rows, optionally
	// month-scoped. Zero values when nothing matches.
	Statistics(ctx context.Context, month int) (*entity.TransactionStatistics, error)

	// BarChart counts transactions per fixed price band. Always returns
	// the ten bands in fixed order, zero counts included.
	BarChart(ctx context.Context, month int) ([]*entity.PriceRangeCount, error)

	// PieChart counts transactions per category present in the data.
	PieChart(ctx context.Context, month int) ([]*entity.CategoryCount, error)
}
