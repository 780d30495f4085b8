package model

import (
	"time"
)

// Transaction represents the database model for transaction records.
// No foreign key is declared; the application owns the cascade when a
// user is deleted.
type Transaction struct {
	ID            uint64    `gorm:"primaryKey"`
	UserID        uint64    `gorm:"not null;index"`
	Text          string    `gorm:"not null"`
	AmountInCents int64     `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
