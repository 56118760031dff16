// Package model contains the GORM-specific structs mapped to database tables.
package model

import "time"

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(60);not null"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Password  string    `gorm:"type:varchar(255);not null"`
	Address   string    `gorm:"type:varchar(400)"`
	Role      string    `gorm:"type:varchar(20);not null;default:'normal';check:role IN ('admin','normal','store_owner')"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
