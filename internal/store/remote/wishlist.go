package remote

import (
	"context"

	"github.com/tiendalocal/storefront-backend/pkg/db/models"
)

// AddToWishlist is idempotent: saving an already-saved product is a no-op.
func (s *Store) AddToWishlist(ctx context.Context, userID, productID string) error {
	db := s.conn(ctx)
	var count int64
	if err := db.Model(&models.WishlistEntry{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error; err != nil {
		return backendErr(err, "checking wishlist")
	}
	if count > 0 {
		return nil
	}
	if err := db.Create(&models.WishlistEntry{UserID: userID, ProductID: productID}).Error; err != nil {
		return backendErr(err, "adding to wishlist")
	}
	return nil
}

func (s *Store) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	err := s.conn(ctx).Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistEntry{}).Error
	if err != nil {
		return backendErr(err, "removing from wishlist")
	}
	return nil
}

func (s *Store) GetWishlist(ctx context.Context, userID string) ([]string, error) {
	ids := []string{}
	err := s.conn(ctx).Model(&models.WishlistEntry{}).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, backendErr(err, "listing wishlist")
	}
	return ids, nil
}

func (s *Store) GetWishlistProducts(ctx context.Context, userID string) ([]models.Product, error) {
	products := []models.Product{}
	err := s.conn(ctx).Model(&models.Product{}).
		Joins("JOIN wishlist ON wishlist.product_id = products.id").
		Where("wishlist.user_id = ?", userID).
		Find(&products).Error
	if err != nil {
		return nil, backendErr(err, "listing wishlist products")
	}
	return products, nil
}

func (s *Store) IsInWishlist(ctx context.Context, userID, productID string) (bool, error) {
	var count int64
	err := s.conn(ctx).Model(&models.WishlistEntry{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, backendErr(err, "checking wishlist")
	}
	return count > 0, nil
}
