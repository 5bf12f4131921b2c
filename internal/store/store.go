// Package store defines the uniform operation set that both backing stores
// implement: the hosted Postgres backend and the embedded local fallback.
// The router in internal/store/router composes the two.
package store

import (
	"context"

	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	"github.com/tiendalocal/storefront-backend/pkg/enums"
)

// Store is the full domain operation set. Both backends implement every
// method with identical result shapes so callers never know which one
// served them. UploadFile is the one remote-only operation; the local
// implementation fails with an offline-unavailable error.
type Store interface {
	// Products
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id string) error
	BulkUpsertProducts(ctx context.Context, products []models.Product) error
	SetProductFeaturedStatus(ctx context.Context, id string, featured bool) error

	// Categories
	GetCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id string) error

	// Users
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetCurrentUser(ctx context.Context, userID string) (*models.User, error)
	LoginUser(ctx context.Context, email, password string) (*models.User, error)
	RegisterUser(ctx context.Context, email, password string) (*models.User, error)
	CreateUserAdmin(ctx context.Context, params CreateUserParams) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	UpdateUserDetails(ctx context.Context, user *models.User) error
	UpdateUserRole(ctx context.Context, userID string, role enums.UserRole) error
	UpdateUserPassword(ctx context.Context, userID, newPassword string) error
	SetUserMustChangePassword(ctx context.Context, userID string, mustChange bool) error
	DeleteUser(ctx context.Context, userID string) error

	// Orders
	CreateOrder(ctx context.Context, userID string, items []NewOrderItem, total Money) (string, error)
	GetOrders(ctx context.Context) ([]Order, error)
	GetAllOrders(ctx context.Context) ([]Order, error)
	GetOrdersByUser(ctx context.Context, userID string) ([]Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status enums.OrderStatus) error
	UpdateOrderNotes(ctx context.Context, orderID, notes string) error
	DeleteOrder(ctx context.Context, orderID string) error

	// Wishlist
	AddToWishlist(ctx context.Context, userID, productID string) error
	RemoveFromWishlist(ctx context.Context, userID, productID string) error
	GetWishlist(ctx context.Context, userID string) ([]string, error)
	GetWishlistProducts(ctx context.Context, userID string) ([]models.Product, error)
	IsInWishlist(ctx context.Context, userID, productID string) (bool, error)

	// Banners
	GetBanners(ctx context.Context) ([]models.Banner, error)
	GetAllBanners(ctx context.Context) ([]models.Banner, error)
	CreateBanner(ctx context.Context, banner *models.Banner) error
	UpdateBanner(ctx context.Context, banner *models.Banner) error
	DeleteBanner(ctx context.Context, id string) error

	// Payment methods
	GetPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
	GetAllPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, method *models.PaymentMethod) error
	UpdatePaymentMethod(ctx context.Context, method *models.PaymentMethod) error
	DeletePaymentMethod(ctx context.Context, id string) error

	// Store settings
	GetStoreSettings(ctx context.Context) ([]models.StoreSetting, error)
	GetStoreSetting(ctx context.Context, key string) (string, error)
	UpdateStoreSetting(ctx context.Context, key, value string) error

	// Binary assets
	UploadFile(ctx context.Context, input UploadInput) (string, error)
}
