package usecase

import (
	"context"

	"ratehub/internal/domain/entity"
)

// SubmitRatingInput carries a 1-5 star value for a store. The author is the
// authenticated caller, never taken from the payload.
type SubmitRatingInput struct {
	StoreID uint `json:"store_id"`
	Rating  int  `json:"rating"`
}

// RatingUsecase covers rating submission and retrieval.
type RatingUsecase interface {
	// SubmitRating inserts or overwrites the caller's rating for a store.
	SubmitRating(ctx context.Context, actor *entity.User, input *SubmitRatingInput) (*entity.Rating, error)

	// GetOwnRating returns the caller's existing rating for a store, or
	// nil when none exists.
	GetOwnRating(ctx context.Context, userID, storeID uint) (*entity.Rating, error)

	// ListStoreRatings lists all ratings of a store with rater names,
	// newest first.
	ListStoreRatings(ctx context.Context, storeID uint) ([]*entity.Rating, error)
}
