package postgres

import (
	"ratehub/internal/errors"
	"ratehub/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// migrate creates or updates the schema for every mapped table.
func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.StoreModel{},
		&model.RatingModel{},
		&model.TransactionModel{},
	); err != nil {
		return errors.Wrap(err, "failed to run schema migration")
	}

	return nil
}
