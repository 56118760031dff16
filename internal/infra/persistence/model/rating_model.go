package model

import "time"

// RatingModel is the GORM-specific struct for the 'ratings' table.
// The composite unique index enforces one rating per user per store; writes
// go through an ON CONFLICT upsert against it.
type RatingModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_ratings_user_store"`
	StoreID   uint      `gorm:"not null;uniqueIndex:idx_ratings_user_store;index"`
	Rating    int       `gorm:"not null;check:rating BETWEEN 1 AND 5"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	User  *UserModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Store *StoreModel `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}
