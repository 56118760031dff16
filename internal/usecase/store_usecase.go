package usecase

import (
	"context"

	"ratehub/internal/domain/entity"
	"ratehub/internal/domain/repository"
)

// CreateStoreInput is the admin-only store creation payload. OwnerID is
// optional; nil leaves the store unowned.
type CreateStoreInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	OwnerID *uint  `json:"owner_id"`
}

// StoreDetails is a store plus the full list of its raters, as shown on the
// owner dashboard.
type StoreDetails struct {
	Store  *entity.Store        `json:"store"`
	Raters []*entity.StoreRater `json:"raters"`
}

// StoreUsecase covers store browsing and admin store management.
type StoreUsecase interface {
	// CreateStore persists a new store. Admin only.
	CreateStore(ctx context.Context, input *CreateStoreInput) (*entity.Store, error)

	// ListStores lists stores matching the filter, each carrying its
	// rating aggregates.
	ListStores(ctx context.Context, filter repository.StoreFilter) ([]*entity.Store, error)

	// GetStore resolves a store by id; when the id misses and an email is
	// given, it falls back to the email lookup.
	GetStore(ctx context.Context, id uint, email string) (*entity.Store, error)

	// GetStoreDetails returns the store with every rating it received,
	// newest first.
	GetStoreDetails(ctx context.Context, id uint) (*StoreDetails, error)
}
