package models

import (
	"time"

	"github.com/tiendalocal/storefront-backend/pkg/enums"
)

// User represents a storefront account, shopper or admin.
type User struct {
	ID                 string         `gorm:"column:id;primaryKey"`
	Name               string         `gorm:"column:name;not null"`
	Email              string         `gorm:"column:email;not null;uniqueIndex"`
	Password           string         `gorm:"column:password;not null"`
	Avatar             string         `gorm:"column:avatar;not null;default:''"`
	Phone              string         `gorm:"column:phone;not null;default:''"`
	City               string         `gorm:"column:city;not null;default:''"`
	IsActive           bool           `gorm:"column:is_active;not null"`
	Role               enums.UserRole `gorm:"column:role;not null;default:user"`
	MustChangePassword bool           `gorm:"column:must_change_password;not null;default:false"`
	CreatedAt          time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
