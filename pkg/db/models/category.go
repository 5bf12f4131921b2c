package models

import "time"

// Category groups products for browsing. Products reference it by display
// name rather than id, so renames orphan their products.
type Category struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;not null;uniqueIndex"`
	Icon      string    `gorm:"column:icon;not null;default:''"`
	Image     string    `gorm:"column:image;not null;default:''"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
