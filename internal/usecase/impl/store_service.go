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

type storeService struct {
	storeRepo repository.StoreRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// NewStoreService creates a new store service instance.
func NewStoreService(
	storeRepo repository.StoreRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.StoreUsecase {
	return &storeService{
		storeRepo: storeRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// CreateStore persists a new store. A non-nil OwnerID must reference an
// existing user; the owner is not required to hold the store_owner role.
func (s *storeService) CreateStore(ctx context.Context, input *usecase.CreateStoreInput) (*entity.Store, error) {
	if input.OwnerID != nil {
		if _, err := s.userRepo.FindByID(ctx, *input.OwnerID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil, domainerrors.ErrValidationFailed.WithDetails("owner_id does not reference an existing user")
			}

			return nil, err
		}
	}

	if _, err := s.storeRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrStoreEmailAlreadyExists
	} else if !errors.Is(err, repository.ErrStoreNotFound) {
		return nil, err
	}

	store := &entity.Store{
		Name:    input.Name,
		Email:   input.Email,
		Address: input.Address,
		OwnerID: input.OwnerID,
	}
	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "store created",
		slog.Uint64("storeID", uint64(store.ID)),
		slog.String("email", store.Email),
	)

	return store, nil
}

// ListStores lists stores matching the filter.
func (s *storeService) ListStores(ctx context.Context, filter repository.StoreFilter) ([]*entity.Store, error) {
	return s.storeRepo.FindAll(ctx, filter)
}

// GetStore resolves a store by id, falling back to the email lookup when
// the id misses and an email is given.
func (s *storeService) GetStore(ctx context.Context, id uint, email string) (*entity.Store, error) {
	store, err := s.storeRepo.FindByID(ctx, id)
	if err == nil {
		return store, nil
	}
	if !errors.Is(err, repository.ErrStoreNotFound) {
		return nil, err
	}

	if email == "" {
		return nil, domainerrors.ErrStoreNotFound
	}

	store, err = s.storeRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, err
	}

	return store, nil
}

// GetStoreDetails returns the store with every rating it received.
func (s *storeService) GetStoreDetails(ctx context.Context, id uint) (*usecase.StoreDetails, error) {
	store, err := s.storeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, err
	}

	raters, err := s.storeRepo.FindRaters(ctx, id)
	if err != nil {
		return nil, err
	}

	return &usecase.StoreDetails{Store: store, Raters: raters}, nil
}
