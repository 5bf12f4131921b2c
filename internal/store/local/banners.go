package local

import (
	"context"

	"gorm.io/gorm"

	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	"github.com/tiendalocal/storefront-backend/pkg/identifier"
)

// GetBanners returns the active banners in display order for the home
// screen. Admin screens use GetAllBanners.
func (s *Store) GetBanners(ctx context.Context) ([]models.Banner, error) {
	banners := []models.Banner{}
	err := s.read(ctx, func(db *gorm.DB) error {
		return db.Where("is_active = ?", true).Order("sort_order asc").Find(&banners).Error
	})
	if err != nil {
		s.warn(ctx, "GetBanners", err)
		return []models.Banner{}, nil
	}
	return banners, nil
}

func (s *Store) GetAllBanners(ctx context.Context) ([]models.Banner, error) {
	banners := []models.Banner{}
	err := s.read(ctx, func(db *gorm.DB) error {
		return db.Order("sort_order asc").Find(&banners).Error
	})
	if err != nil {
		s.warn(ctx, "GetAllBanners", err)
		return []models.Banner{}, nil
	}
	return banners, nil
}

func (s *Store) CreateBanner(ctx context.Context, banner *models.Banner) error {
	if banner.ID == "" {
		banner.ID = identifier.New(identifier.PrefixBanner)
	}
	err := s.mutate(ctx, func(db *gorm.DB) error {
		return db.Create(banner).Error
	})
	if err != nil {
		return localErr(err, "creating banner")
	}
	return nil
}

func (s *Store) UpdateBanner(ctx context.Context, banner *models.Banner) error {
	err := s.mutate(ctx, func(db *gorm.DB) error {
		return db.Model(&models.Banner{}).Where("id = ?", banner.ID).Updates(map[string]any{
			"title":       banner.Title,
			"description": banner.Description,
			"image_url":   banner.ImageURL,
			"link":        banner.Link,
			"sort_order":  banner.SortOrder,
			"is_active":   banner.IsActive,
			"style":       banner.Style,
		}).Error
	})
	if err != nil {
		return localErr(err, "updating banner")
	}
	return nil
}

func (s *Store) DeleteBanner(ctx context.Context, id string) error {
	err := s.mutate(ctx, func(db *gorm.DB) error {
		return db.Delete(&models.Banner{}, "id = ?", id).Error
	})
	if err != nil {
		return localErr(err, "deleting banner")
	}
	return nil
}
