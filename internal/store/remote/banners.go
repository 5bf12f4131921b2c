package remote

import (
	"context"

	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	"github.com/tiendalocal/storefront-backend/pkg/identifier"
)

// GetBanners returns the active banners in display order.
func (s *Store) GetBanners(ctx context.Context) ([]models.Banner, error) {
	banners := []models.Banner{}
	err := s.conn(ctx).Where("is_active = ?", true).Order("sort_order asc").Find(&banners).Error
	if err != nil {
		return nil, backendErr(err, "listing banners")
	}
	return banners, nil
}

func (s *Store) GetAllBanners(ctx context.Context) ([]models.Banner, error) {
	banners := []models.Banner{}
	if err := s.conn(ctx).Order("sort_order asc").Find(&banners).Error; err != nil {
		return nil, backendErr(err, "listing banners")
	}
	return banners, nil
}

func (s *Store) CreateBanner(ctx context.Context, banner *models.Banner) error {
	if banner.ID == "" {
		banner.ID = identifier.New(identifier.PrefixBanner)
	}
	if err := s.conn(ctx).Create(banner).Error; err != nil {
		return backendErr(err, "creating banner")
	}
	return nil
}

func (s *Store) UpdateBanner(ctx context.Context, banner *models.Banner) error {
	err := s.conn(ctx).Model(&models.Banner{}).Where("id = ?", banner.ID).Updates(map[string]any{
		"title":       banner.Title,
		"description": banner.Description,
		"image_url":   banner.ImageURL,
		"link":        banner.Link,
		"sort_order":  banner.SortOrder,
		"is_active":   banner.IsActive,
		"style":       banner.Style,
	}).Error
	if err != nil {
		return backendErr(err, "updating banner")
	}
	return nil
}

func (s *Store) DeleteBanner(ctx context.Context, id string) error {
	if err := s.conn(ctx).Delete(&models.Banner{}, "id = ?", id).Error; err != nil {
		return backendErr(err, "deleting banner")
	}
	return nil
}
