package model

import "time"

// StoreModel is the GORM-specific struct for the 'stores' table.
// OwnerID is nullable; a store may exist without a registered owner account.
type StoreModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(60);not null"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Address   string    `gorm:"type:varchar(400)"`
	OwnerID   *uint     `gorm:"index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Owner *UserModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
