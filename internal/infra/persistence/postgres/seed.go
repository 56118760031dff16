package postgres

import (
	"context"
	"log/slog"

	"ratehub/internal/domain/entity"
	"ratehub/internal/domain/service"
	"ratehub/internal/errors"
	"ratehub/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type seedUser struct {
	name     string
	email    string
	password string
	address  string
	role     entity.Role
}

type seedStore struct {
	name       string
	email      string
	address    string
	ownerEmail string
}

type seedRating struct {
	userEmail  string
	storeEmail string
	rating     int
}

var (
	seedUsers = []seedUser{
		{
			name:     "System Administrator User",
			email:    "admin@system.com",
			password: "Admin123!",
			address:  "123 Admin Street, Admin City, AC 12345",
			role:     entity.RoleAdmin,
		},
		{
			name:     "John Doe Normal User Account",
			email:    "john@example.com",
			password: "User123!",
			address:  "456 User Avenue, User City, UC 67890",
			role:     entity.RoleNormal,
		},
		{
			name:     "Jane Smith Store Owner Account",
			email:    "jane@store.com",
			password: "Store123!",
			address:  "789 Store Boulevard, Store City, SC 11111",
			role:     entity.RoleStoreOwner,
		},
	}

	seedStores = []seedStore{
		{
			name:       "Electronics Paradise Store",
			email:      "contact@electronics.com",
			address:    "100 Electronics Way, Tech City, TC 22222",
			ownerEmail: "jane@store.com",
		},
		{
			name:       "Fashion Forward Boutique Store",
			email:      "info@fashion.com",
			address:    "200 Fashion Street, Style City, SC 33333",
			ownerEmail: "jane@store.com",
		},
	}

	seedRatings = []seedRating{
		{userEmail: "john@example.com", storeEmail: "contact@electronics.com", rating: 5},
		{userEmail: "john@example.com", storeEmail: "info@fashion.com", rating: 4},
	}
)

// seed populates sample accounts, stores and ratings on first run. It is
// skipped entirely whenever any user already exists.
func seed(ctx context.Context, db *gorm.DB, logger *slog.Logger, hasher service.PasswordHasher) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.UserModel{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to count users before seeding")
	}
	if count > 0 {
		logger.DebugContext(ctx, "database already seeded, skipping")

		return nil
	}

	userIDs := make(map[string]uint, len(seedUsers))
	for _, su := range seedUsers {
		hash, err := hasher.Hash(su.password)
		if err != nil {
			return errors.Wrap(err, "failed to hash seed password")
		}

		userM := &model.UserModel{
			Name:     su.name,
			Email:    su.email,
			Password: hash,
			Address:  su.address,
			Role:     su.role.String(),
		}
		if err := db.WithContext(ctx).Create(userM).Error; err != nil {
			return errors.Wrapf(err, "failed to seed user %s", su.email)
		}
		userIDs[su.email] = userM.ID
	}

	storeIDs := make(map[string]uint, len(seedStores))
	for _, ss := range seedStores {
		ownerID := userIDs[ss.ownerEmail]
		storeM := &model.StoreModel{
			Name:    ss.name,
			Email:   ss.email,
			Address: ss.address,
			OwnerID: &ownerID,
		}
		if err := db.WithContext(ctx).Create(storeM).Error; err != nil {
			return errors.Wrapf(err, "failed to seed store %s", ss.email)
		}
		storeIDs[ss.email] = storeM.ID
	}

	for _, sr := range seedRatings {
		ratingM := &model.RatingModel{
			UserID:  userIDs[sr.userEmail],
			StoreID: storeIDs[sr.storeEmail],
			Rating:  sr.rating,
		}
		if err := db.WithContext(ctx).Create(ratingM).Error; err != nil {
			return errors.Wrap(err, "failed to seed rating")
		}
	}

	logger.InfoContext(ctx, "database seeded with sample data",
		slog.Int("users", len(seedUsers)),
		slog.Int("stores", len(seedStores)),
		slog.Int("ratings", len(seedRatings)),
	)

	return nil
}
