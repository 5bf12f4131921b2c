package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tiendalocal/storefront-backend/pkg/enums"
)

// Order is a customer checkout. Line items are stored separately and
// loaded alongside the order.
type Order struct {
	ID        string            `gorm:"column:id;primaryKey"`
	UserID    string            `gorm:"column:user_id;not null;index"`
	Total     decimal.Decimal   `gorm:"column:total;type:numeric(14,2);not null"`
	Status    enums.OrderStatus `gorm:"column:status;not null;default:pending"`
	Notes     *string           `gorm:"column:notes"`
	Items     []OrderItem       `gorm:"foreignKey:OrderID"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
