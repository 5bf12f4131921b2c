package models

import "time"

// WishlistEntry marks a product a user has saved. Membership is keyed by
// the (user, product) pair.
type WishlistEntry struct {
	UserID    string    `gorm:"column:user_id;primaryKey"`
	ProductID string    `gorm:"column:product_id;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName overrides gorm's default pluralization.
func (WishlistEntry) TableName() string { return "wishlist" }
