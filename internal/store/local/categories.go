package local

import (
	"context"

	"gorm.io/gorm"

	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	"github.com/tiendalocal/storefront-backend/pkg/identifier"
)

func (s *Store) GetCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	err := s.read(ctx, func(db *gorm.DB) error {
		return db.Order("name asc").Find(&categories).Error
	})
	if err != nil {
		s.warn(ctx, "GetCategories", err)
		return []models.Category{}, nil
	}
	return categories, nil
}

func (s *Store) CreateCategory(ctx context.Context, category *models.Category) error {
	if category.ID == "" {
		category.ID = identifier.New(identifier.PrefixCategory)
	}
	err := s.mutate(ctx, func(db *gorm.DB) error {
		return db.Create(category).Error
	})
	if err != nil {
		return localErr(err, "creating category")
	}
	return nil
}

func (s *Store) UpdateCategory(ctx context.Context, category *models.Category) error {
	err := s.mutate(ctx, func(db *gorm.DB) error {
		return db.Model(&models.Category{}).Where("id = ?", category.ID).Updates(map[string]any{
			"name":  category.Name,
			"icon":  category.Icon,
			"image": category.Image,
		}).Error
	})
	if err != nil {
		return localErr(err, "updating category")
	}
	return nil
}

// DeleteCategory removes the category row only. Products keep their label
// and simply stop matching any category filter.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	err := s.mutate(ctx, func(db *gorm.DB) error {
		return db.Delete(&models.Category{}, "id = ?", id).Error
	})
	if err != nil {
		return localErr(err, "deleting category")
	}
	return nil
}
