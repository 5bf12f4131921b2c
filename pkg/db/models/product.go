package models

import (
	"time"

	"github.com/shopspring/decimal"

	dbtypes "github.com/tiendalocal/storefront-backend/pkg/db/types"
)

// Product is a catalog listing. Retired products keep their row with
// is_active=false so historical order lines stay resolvable.
type Product struct {
	ID             string             `gorm:"column:id;primaryKey"`
	SKU            string             `gorm:"column:sku;not null;default:''"`
	Name           string             `gorm:"column:name;not null"`
	Description    string             `gorm:"column:description;not null;default:''"`
	Price          decimal.Decimal    `gorm:"column:price;type:numeric(14,2);not null"`
	Category       string             `gorm:"column:category;not null;default:'';index"`
	Image          string             `gorm:"column:image;not null;default:''"`
	Images         dbtypes.StringList `gorm:"column:images;type:text;not null;default:'[]'"`
	Specifications dbtypes.StringMap  `gorm:"column:specifications;type:text;not null;default:'{}'"`
	IsFeatured     bool               `gorm:"column:is_featured;not null;default:false"`
	IsActive       bool               `gorm:"column:is_active;not null"`
	CreatedAt      time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
