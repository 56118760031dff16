package impl

import (
	"context"
	"log/slog"

	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/repository"
	"ratehub/internal/errors"
	"ratehub/internal/usecase"
)

type ratingService struct {
	ratingRepo repository.RatingRepository
	storeRepo  repository.StoreRepository
	logger     *slog.Logger
}

// NewRatingService creates a new rating service instance.
func NewRatingService(
	ratingRepo repository.RatingRepository,
	storeRepo repository.StoreRepository,
	logger *slog.Logger,
) usecase.RatingUsecase {
	return &ratingService{
		ratingRepo: ratingRepo,
		storeRepo:  storeRepo,
		logger:     logger,
	}
}

// SubmitRating inserts or overwrites the caller's rating for a store. The
// author is the verified actor, never the payload.
func (s *ratingService) SubmitRating(ctx context.Context, actor *entity.User, input *usecase.SubmitRatingInput) (*entity.Rating, error) {
	if input.Rating < entity.RatingMin || input.Rating > entity.RatingMax {
		return nil, domainerrors.ErrRatingOutOfRange
	}

	if _, err := s.storeRepo.FindByID(ctx, input.StoreID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, err
	}

	rating := &entity.Rating{
		UserID:  actor.ID,
		StoreID: input.StoreID,
		Rating:  input.Rating,
	}
	if err := s.ratingRepo.Upsert(ctx, rating); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "rating submitted",
		slog.Uint64("userID", uint64(actor.ID)),
		slog.Uint64("storeID", uint64(input.StoreID)),
		slog.Int("rating", input.Rating),
	)

	return rating, nil
}

// GetOwnRating returns the caller's existing rating for a store, or nil
// when none exists.
func (s *ratingService) GetOwnRating(ctx context.Context, userID, storeID uint) (*entity.Rating, error) {
	rating, err := s.ratingRepo.FindByUserAndStore(ctx, userID, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return rating, nil
}

// ListStoreRatings lists all ratings of a store with rater names.
func (s *ratingService) ListStoreRatings(ctx context.Context, storeID uint) ([]*entity.Rating, error) {
	if _, err := s.storeRepo.FindByID(ctx, storeID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, err
	}

	return s.ratingRepo.FindByStore(ctx, storeID)
}
