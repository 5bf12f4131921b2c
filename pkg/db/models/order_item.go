package models

import (
	"github.com/shopspring/decimal"
)

// OrderItem is a line in an order. Price is the unit price captured at
// checkout time, so later catalog edits never change past orders.
type OrderItem struct {
	ID        string          `gorm:"column:id;primaryKey"`
	OrderID   string          `gorm:"column:order_id;not null;index"`
	ProductID string          `gorm:"column:product_id;not null;index"`
	Quantity  int             `gorm:"column:quantity;not null"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(14,2);not null"`
}
