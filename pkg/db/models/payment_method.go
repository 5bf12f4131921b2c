package models

import "time"

// PaymentMethod is a manual payment channel shown at checkout, e.g. a bank
// transfer account.
type PaymentMethod struct {
	ID            string    `gorm:"column:id;primaryKey"`
	BankName      string    `gorm:"column:bank_name;not null"`
	AccountType   string    `gorm:"column:account_type;not null;default:''"`
	AccountNumber string    `gorm:"column:account_number;not null;default:''"`
	AccountHolder string    `gorm:"column:account_holder;not null;default:''"`
	Phone         string    `gorm:"column:phone;not null;default:''"`
	Email         string    `gorm:"column:email;not null;default:''"`
	IsActive      bool      `gorm:"column:is_active;not null"`
	Instructions  string    `gorm:"column:instructions;not null;default:''"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
