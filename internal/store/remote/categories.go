package remote

import (
	"context"

	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	"github.com/tiendalocal/storefront-backend/pkg/identifier"
)

func (s *Store) GetCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := s.conn(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, backendErr(err, "listing categories")
	}
	return categories, nil
}

func (s *Store) CreateCategory(ctx context.Context, category *models.Category) error {
	if category.ID == "" {
		category.ID = identifier.New(identifier.PrefixCategory)
	}
	if err := s.conn(ctx).Create(category).Error; err != nil {
		return backendErr(err, "creating category")
	}
	return nil
}

func (s *Store) UpdateCategory(ctx context.Context, category *models.Category) error {
	err := s.conn(ctx).Model(&models.Category{}).Where("id = ?", category.ID).Updates(map[string]any{
		"name":  category.Name,
		"icon":  category.Icon,
		"image": category.Image,
	}).Error
	if err != nil {
		return backendErr(err, "updating category")
	}
	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	if err := s.conn(ctx).Delete(&models.Category{}, "id = ?", id).Error; err != nil {
		return backendErr(err, "deleting category")
	}
	return nil
}
