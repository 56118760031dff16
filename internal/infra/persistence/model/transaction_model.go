package model

import "time"

// TransactionModel is the GORM-specific struct for the 'transactions' table.
// Rows are pre-populated sales records; the API only reads them.
type TransactionModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"type:numeric(10,2);not null"`
	Category    string    `gorm:"type:varchar(100);index"`
	Image       string    `gorm:"type:text"`
	Sold        bool      `gorm:"not null;default:false"`
	DateOfSale  time.Time `gorm:"column:date_of_sale;not null;index"`
	StoreID     *uint     `gorm:"index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`

	Store *StoreModel `gorm:"foreignKey:StoreID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}
