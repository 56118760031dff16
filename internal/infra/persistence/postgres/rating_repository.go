package postgres

import (
	"context"
	"time"

	"ratehub/internal/domain/entity"
	domainerrors "ratehub/internal/domain/errors"
	"ratehub/internal/domain/repository"
	"ratehub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ratingRepository implements the repository.RatingRepository interface.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{
		db: db,
	}
}

// Upsert inserts the rating or overwrites the existing (user_id, store_id)
// row in a single ON CONFLICT statement.
func (repo *ratingRepository) Upsert(ctx context.Context, rating *entity.Rating) error {
	ratingM := &model.RatingModel{
		UserID:  rating.UserID,
		StoreID: rating.StoreID,
		Rating:  rating.Rating,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "store_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"rating":     rating.Rating,
				"updated_at": time.Now(),
			}),
		}).
		Create(ratingM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrRatingOutOfRange
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert rating")
	}

	rating.ID = ratingM.ID
	rating.CreatedAt = ratingM.CreatedAt
	rating.UpdatedAt = ratingM.UpdatedAt

	return nil
}

// FindByUserAndStore retrieves one user's rating for one store.
func (repo *ratingRepository) FindByUserAndStore(ctx context.Context, userID, storeID uint) (*entity.Rating, error) {
	var ratingM model.RatingModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND store_id = ?", userID, storeID).
		First(&ratingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to find rating")
	}

	return toRatingDomain(&ratingM, ""), nil
}

// FindByStore lists all ratings for a store joined with the rater's name,
// newest first.
func (repo *ratingRepository) FindByStore(ctx context.Context, storeID uint) ([]*entity.Rating, error) {
	type ratingRow struct {
		model.RatingModel
		UserName string
	}

	var rows []*ratingRow
	if err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("ratings.*, users.name AS user_name").
		Joins("JOIN users ON users.id = ratings.user_id").
		Where("ratings.store_id = ?", storeID).
		Order("ratings.updated_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list store ratings")
	}

	ratings := make([]*entity.Rating, 0, len(rows))
	for _, row := range rows {
		ratings = append(ratings, toRatingDomain(&row.RatingModel, row.UserName))
	}

	return ratings, nil
}

// Count returns the total number of ratings.
func (repo *ratingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.RatingModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count ratings")
	}

	return count, nil
}

// --- Mapper Functions ---

// toRatingDomain converts a GORM RatingModel to a domain Rating entity.
func toRatingDomain(data *model.RatingModel, userName string) *entity.Rating {
	if data == nil {
		return nil
	}

	return &entity.Rating{
		ID:        data.ID,
		UserID:    data.UserID,
		StoreID:   data.StoreID,
		Rating:    data.Rating,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		UserName:  userName,
	}
}
