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
)

// storeSortColumns whitelists the listing sort columns. The rating aggregate
// sorts by the computed column alias.
var storeSortColumns = map[string]string{
	"name":           "stores.name",
	"email":          "stores.email",
	"address":        "stores.address",
	"created_at":     "stores.created_at",
	"average_rating": "average_rating",
}

// storeRow is the flat scan target for store reads joined with their rating
// aggregates.
type storeRow struct {
	ID            uint
	Name          string
	Email         string
	Address       string
	OwnerID       *uint
	CreatedAt     time.Time
	AverageRating float64
	TotalRatings  int64
}

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{
		db: db,
	}
}

// Create persists a new store. OwnerID may be nil.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := &model.StoreModel{
		Name:    store.Name,
		Email:   store.Email,
		Address: store.Address,
		OwnerID: store.OwnerID,
	}

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrStoreEmailAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt

	return nil
}

// aggregateQuery builds the store listing joined with COALESCE'd rating
// aggregates, grouped per store so averages never come back null.
func (repo *storeRepository) aggregateQuery(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Select("stores.id, stores.name, stores.email, stores.address, stores.owner_id, stores.created_at, " +
			"COALESCE(AVG(ratings.rating), 0) AS average_rating, " +
			"COUNT(ratings.id) AS total_ratings").
		Joins("LEFT JOIN ratings ON ratings.store_id = stores.id").
		Group("stores.id")
}

// FindAll lists stores matching the filter, each with its rating aggregates.
func (repo *storeRepository) FindAll(ctx context.Context, filter repository.StoreFilter) ([]*entity.Store, error) {
	query := repo.aggregateQuery(ctx)

	if filter.Name != "" {
		query = query.Where("stores.name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Email != "" {
		query = query.Where("stores.email ILIKE ?", "%"+filter.Email+"%")
	}
	if filter.Address != "" {
		query = query.Where("stores.address ILIKE ?", "%"+filter.Address+"%")
	}

	query = query.Order(orderClause(storeSortColumns, filter.SortBy, filter.SortOrder, "stores.created_at DESC"))

	var rows []*storeRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	stores := make([]*entity.Store, 0, len(rows))
	for _, row := range rows {
		stores = append(stores, toStoreDomain(row))
	}

	return stores, nil
}

// FindByID retrieves one store with its rating aggregates.
func (repo *storeRepository) FindByID(ctx context.Context, id uint) (*entity.Store, error) {
	var row storeRow

	result := repo.aggregateQuery(ctx).Where("stores.id = ?", id).Scan(&row)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find store by ID")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrStoreNotFound
	}

	return toStoreDomain(&row), nil
}

// FindByEmail retrieves one store by email with its rating aggregates.
func (repo *storeRepository) FindByEmail(ctx context.Context, email string) (*entity.Store, error) {
	var row storeRow

	result := repo.aggregateQuery(ctx).Where("stores.email = ?", email).Scan(&row)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find store by email")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrStoreNotFound
	}

	return toStoreDomain(&row), nil
}

// FindRaters lists every user who rated the store, newest rating first.
func (repo *storeRepository) FindRaters(ctx context.Context, storeID uint) ([]*entity.StoreRater, error) {
	type raterRow struct {
		UserID  uint
		Name    string
		Email   string
		Rating  int
		RatedAt time.Time
	}

	var rows []*raterRow
	if err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("ratings.user_id, users.name, users.email, ratings.rating, ratings.updated_at AS rated_at").
		Joins("JOIN users ON users.id = ratings.user_id").
		Where("ratings.store_id = ?", storeID).
		Order("ratings.updated_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list store raters")
	}

	raters := make([]*entity.StoreRater, 0, len(rows))
	for _, row := range rows {
		raters = append(raters, &entity.StoreRater{
			UserID:  row.UserID,
			Name:    row.Name,
			Email:   row.Email,
			Rating:  row.Rating,
			RatedAt: row.RatedAt,
		})
	}

	return raters, nil
}

// Count returns the total number of stores.
func (repo *storeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.StoreModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count stores")
	}

	return count, nil
}

// --- Mapper Functions ---

// toStoreDomain converts an aggregate scan row to a domain Store entity.
func toStoreDomain(row *storeRow) *entity.Store {
	if row == nil {
		return nil
	}

	return &entity.Store{
		ID:            row.ID,
		Name:          row.Name,
		Email:         row.Email,
		Address:       row.Address,
		OwnerID:       row.OwnerID,
		CreatedAt:     row.CreatedAt,
		AverageRating: row.AverageRating,
		TotalRatings:  row.TotalRatings,
	}
}
