package models

import "time"

// Notification records an order event delivered to the admin inbox.
type Notification struct {
	ID        string     `gorm:"column:id;primaryKey"`
	EventID   string     `gorm:"column:event_id;not null;uniqueIndex"`
	OrderID   string     `gorm:"column:order_id;not null;index"`
	UserID    string     `gorm:"column:user_id;not null"`
	Status    string     `gorm:"column:status;not null"`
	Message   string     `gorm:"column:message;not null;default:''"`
	ReadAt    *time.Time `gorm:"column:read_at"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
}
