package repository

import (
	"context"
	"errors"

	"ratehub/internal/domain/entity"
)

// ErrRatingNotFound is a domain-specific error returned when a rating is not found.
var ErrRatingNotFound = errors.New("rating not found")

// RatingRepository defines the standard operations for rating persistence.
type RatingRepository interface {
	// Upsert inserts the rating or, when a row for (UserID, StoreID)
	// already exists, overwrites its value and refreshes the update
	// timestamp. The insert-or-update is a single atomic statement at the
	// storage layer.
	Upsert(ctx context.Context, rating *entity.Rating) error

	// FindByUserAndStore retrieves one user's rating for one store.
	FindByUserAndStore(ctx context.Context, userID, storeID uint) (*entity.Rating, error)

	// FindByStore lists all ratings for a store joined with the rater's
	// name, newest first.
	FindByStore(ctx context.Context, storeID uint) ([]*entity.Rating, error)

	// Count returns the total number of ratings.
	Count(ctx context.Context) (int64, error)
}
