package local

import (
	"context"

	"gorm.io/gorm"

	"github.com/tiendalocal/storefront-backend/pkg/db/models"
)

// AddToWishlist is idempotent: saving an already-saved product is a no-op
// rather than a duplicate or an error.
func (s *Store) AddToWishlist(ctx context.Context, userID, productID string) error {
	err := s.mutate(ctx, func(db *gorm.DB) error {
		var count int64
		if err := db.Model(&models.WishlistEntry{}).
			Where("user_id = ? AND product_id = ?", userID, productID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		return db.Create(&models.WishlistEntry{UserID: userID, ProductID: productID}).Error
	})
	if err != nil {
		return localErr(err, "adding to wishlist")
	}
	return nil
}

func (s *Store) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	err := s.mutate(ctx, func(db *gorm.DB) error {
		return db.Where("user_id = ? AND product_id = ?", userID, productID).
			Delete(&models.WishlistEntry{}).Error
	})
	if err != nil {
		return localErr(err, "removing from wishlist")
	}
	return nil
}

func (s *Store) GetWishlist(ctx context.Context, userID string) ([]string, error) {
	ids := []string{}
	err := s.read(ctx, func(db *gorm.DB) error {
		return db.Model(&models.WishlistEntry{}).
			Where("user_id = ?", userID).
			Order("created_at asc").
			Pluck("product_id", &ids).Error
	})
	if err != nil {
		s.warn(ctx, "GetWishlist", err)
		return []string{}, nil
	}
	return ids, nil
}

func (s *Store) GetWishlistProducts(ctx context.Context, userID string) ([]models.Product, error) {
	products := []models.Product{}
	err := s.read(ctx, func(db *gorm.DB) error {
		return db.Model(&models.Product{}).
			Joins("JOIN wishlist ON wishlist.product_id = products.id").
			Where("wishlist.user_id = ?", userID).
			Find(&products).Error
	})
	if err != nil {
		s.warn(ctx, "GetWishlistProducts", err)
		return []models.Product{}, nil
	}
	return products, nil
}

func (s *Store) IsInWishlist(ctx context.Context, userID, productID string) (bool, error) {
	var count int64
	err := s.read(ctx, func(db *gorm.DB) error {
		return db.Model(&models.WishlistEntry{}).
			Where("user_id = ? AND product_id = ?", userID, productID).
			Count(&count).Error
	})
	if err != nil {
		s.warn(ctx, "IsInWishlist", err)
		return false, nil
	}
	return count > 0, nil
}
