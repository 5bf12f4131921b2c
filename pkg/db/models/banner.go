package models

import (
	"time"

	"github.com/tiendalocal/storefront-backend/pkg/enums"
)

// Banner is a home-screen promotional slot.
type Banner struct {
	ID          string            `gorm:"column:id;primaryKey"`
	Title       string            `gorm:"column:title;not null"`
	Description string            `gorm:"column:description;not null;default:''"`
	ImageURL    string            `gorm:"column:image_url;not null;default:''"`
	Link        string            `gorm:"column:link;not null;default:''"`
	SortOrder   int               `gorm:"column:sort_order;not null;default:0"`
	IsActive    bool              `gorm:"column:is_active;not null"`
	Style       enums.BannerStyle `gorm:"column:style;not null;default:split"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
