package impl

import (
	"context"

	"ratehub/internal/domain/repository"
	"ratehub/internal/usecase"
)

type dashboardService struct {
	userRepo   repository.UserRepository
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
}

// NewDashboardService creates a new dashboard service instance.
func NewDashboardService(
	userRepo repository.UserRepository,
	storeRepo repository.StoreRepository,
	ratingRepo repository.RatingRepository,
) usecase.DashboardUsecase {
	return &dashboardService{
		userRepo:   userRepo,
		storeRepo:  storeRepo,
		ratingRepo: ratingRepo,
	}
}

// GetStats counts users, stores and ratings.
func (s *dashboardService) GetStats(ctx context.Context) (*usecase.DashboardStats, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	stores, err := s.storeRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	ratings, err := s.ratingRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.DashboardStats{
		TotalUsers:   users,
		TotalStores:  stores,
		TotalRatings: ratings,
	}, nil
}
