package usecase

import "context"

// DashboardStats are the admin dashboard totals.
type DashboardStats struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}

// DashboardUsecase exposes the admin dashboard aggregates.
type DashboardUsecase interface {
	// GetStats counts users, stores and ratings.
	GetStats(ctx context.Context) (*DashboardStats, error)
}
