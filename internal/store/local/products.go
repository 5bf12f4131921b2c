package local

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
	"github.com/tiendalocal/storefront-backend/pkg/identifier"
)

// GetProducts returns the full catalog. Query failures degrade to an empty
// slice so browsing never hard-fails on the offline path.
func (s *Store) GetProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	err := s.read(ctx, func(db *gorm.DB) error {
		return db.Find(&products).Error
	})
	if err != nil {
		s.warn(ctx, "GetProducts", err)
		return []models.Product{}, nil
	}
	return products, nil
}

func (s *Store) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := s.read(ctx, func(db *gorm.DB) error {
		return db.First(&product, "id = ?", id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	if err != nil {
		return nil, localErr(err, "loading product")
	}
	return &product, nil
}

func (s *Store) CreateProduct(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = identifier.New(identifier.PrefixProduct)
	}
	err := s.mutate(ctx, func(db *gorm.DB) error {
		return db.Create(product).Error
	})
	if err != nil {
		return localErr(err, "creating product")
	}
	return nil
}

func (s *Store) UpdateProduct(ctx context.Context, product *models.Product) error {
	err := s.mutate(ctx, func(db *gorm.DB) error {
		return db.Model(&models.Product{}).Where("id = ?", product.ID).Updates(map[string]any{
			"sku":            product.SKU,
			"name":           product.Name,
			"description":    product.Description,
			"price":          product.Price,
			"category":       product.Category,
			"image":          product.Image,
			"images":         product.Images,
			"specifications": product.Specifications,
			"is_featured":    product.IsFeatured,
			"is_active":      product.IsActive,
		}).Error
	})
	if err != nil {
		return localErr(err, "updating product")
	}
	return nil
}

// DeleteProduct removes the row unconditionally. Order lines referencing
// it keep their snapshotted price but lose name/image resolution.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	err := s.mutate(ctx, func(db *gorm.DB) error {
		return db.Delete(&models.Product{}, "id = ?", id).Error
	})
	if err != nil {
		return localErr(err, "deleting product")
	}
	return nil
}

func (s *Store) BulkUpsertProducts(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	for i := range products {
		if products[i].ID == "" {
			products[i].ID = identifier.New(identifier.PrefixProduct)
		}
	}
	err := s.mutate(ctx, func(db *gorm.DB) error {
		return db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&products).Error
	})
	if err != nil {
		return localErr(err, "bulk upserting products")
	}
	return nil
}

func (s *Store) SetProductFeaturedStatus(ctx context.Context, id string, featured bool) error {
	err := s.mutate(ctx, func(db *gorm.DB) error {
		return db.Model(&models.Product{}).Where("id = ?", id).Update("is_featured", featured).Error
	})
	if err != nil {
		return localErr(err, "updating product featured status")
	}
	return nil
}
