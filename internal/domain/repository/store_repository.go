package repository

import (
	"context"
	"errors"

	"ratehub/internal/domain/entity"
)

// ErrStoreNotFound is a domain-specific error returned when a store is not found.
var ErrStoreNotFound = errors.New("store not found")

// StoreFilter narrows and orders store listings; substring matches are
// case-insensitive and combine independently.
type StoreFilter struct {
	Name      string
	Email     string
	Address   string
	SortBy    string
	SortOrder string
}

// StoreRepository defines the standard operations for store persistence.
// Every read carries the computed rating aggregates (average 0 when no
// ratings exist, never null).
type StoreRepository interface {
	// Create persists a new store. OwnerID may be nil.
	Create(ctx context.Context, store *entity.Store) error

	// FindAll lists stores matching the filter, each with AverageRating
	// and TotalRatings computed over the ratings table.
	FindAll(ctx context.Context, filter StoreFilter) ([]*entity.Store, error)

	// FindByID retrieves one store with its rating aggregates.
	FindByID(ctx context.Context, id uint) (*entity.Store, error)

	// FindByEmail retrieves one store by email with its rating aggregates.
	// Used as the secondary lookup key when an ID misses.
	FindByEmail(ctx context.Context, email string) (*entity.Store, error)

	// FindRaters lists every user who rated the store, newest rating first.
	FindRaters(ctx context.Context, storeID uint) ([]*entity.StoreRater, error)

	// Count returns the total number of stores.
	Count(ctx context.Context) (int64, error)
}
