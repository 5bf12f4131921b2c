package remote

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
	"github.com/tiendalocal/storefront-backend/pkg/identifier"
)

func (s *Store) GetProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := s.conn(ctx).Find(&products).Error; err != nil {
		return nil, backendErr(err, "listing products")
	}
	return products, nil
}

func (s *Store) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := s.conn(ctx).First(&product, "id = ?", id).Error
	if isNotFound(err) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	if err != nil {
		return nil, backendErr(err, "loading product")
	}
	return &product, nil
}

func (s *Store) CreateProduct(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = identifier.New(identifier.PrefixProduct)
	}
	if err := s.conn(ctx).Create(product).Error; err != nil {
		return backendErr(err, "creating product")
	}
	return nil
}

func (s *Store) UpdateProduct(ctx context.Context, product *models.Product) error {
	err := s.conn(ctx).Model(&models.Product{}).Where("id = ?", product.ID).Updates(map[string]any{
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
	if err != nil {
		return backendErr(err, "updating product")
	}
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	if err := s.conn(ctx).Delete(&models.Product{}, "id = ?", id).Error; err != nil {
		return backendErr(err, "deleting product")
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
	err := s.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&products).Error
	if err != nil {
		return backendErr(err, "bulk upserting products")
	}
	return nil
}

func (s *Store) SetProductFeaturedStatus(ctx context.Context, id string, featured bool) error {
	err := s.conn(ctx).Model(&models.Product{}).Where("id = ?", id).Update("is_featured", featured).Error
	if err != nil {
		return backendErr(err, "updating product featured status")
	}
	return nil
}
