package impl

import (
	"context"
	"testing"

	mockRepo "ratehub/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_GetStats(t *testing.T) {
	userRepo := &mockRepo.MockUserRepository{}
	storeRepo := &mockRepo.MockStoreRepository{}
	ratingRepo := &mockRepo.MockRatingRepository{}
	service := NewDashboardService(userRepo, storeRepo, ratingRepo)
	ctx := context.Background()

	userRepo.On("Count", ctx).Return(int64(3), nil)
	storeRepo.On("Count", ctx).Return(int64(2), nil)
	ratingRepo.On("Count", ctx).Return(int64(2), nil)

	stats, err := service.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalUsers)
	assert.Equal(t, int64(2), stats.TotalStores)
	assert.Equal(t, int64(2), stats.TotalRatings)
}
