package models

import "time"

// StoreSetting is a single key/value row of storefront configuration.
type StoreSetting struct {
	Key         string    `gorm:"column:key;primaryKey"`
	Value       string    `gorm:"column:value;not null;default:''"`
	Description string    `gorm:"column:description;not null;default:''"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides gorm's default pluralization.
func (StoreSetting) TableName() string { return "store_settings" }
