package router

import (
	"context"

	"github.com/tiendalocal/storefront-backend/internal/store"
	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	"github.com/tiendalocal/storefront-backend/pkg/enums"
)

func (r *Router) GetProducts(ctx context.Context) ([]models.Product, error) {
	return query(ctx, r, "get_products", func(s store.Store) ([]models.Product, error) {
		return s.GetProducts(ctx)
	})
}

func (r *Router) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	return query(ctx, r, "get_product_by_id", func(s store.Store) (*models.Product, error) {
		return s.GetProductByID(ctx, id)
	})
}

func (r *Router) CreateProduct(ctx context.Context, product *models.Product) error {
	return exec(ctx, r, "create_product", func(s store.Store) error {
		return s.CreateProduct(ctx, product)
	})
}

func (r *Router) UpdateProduct(ctx context.Context, product *models.Product) error {
	return exec(ctx, r, "update_product", func(s store.Store) error {
		return s.UpdateProduct(ctx, product)
	})
}

func (r *Router) DeleteProduct(ctx context.Context, id string) error {
	return exec(ctx, r, "delete_product", func(s store.Store) error {
		return s.DeleteProduct(ctx, id)
	})
}

func (r *Router) BulkUpsertProducts(ctx context.Context, products []models.Product) error {
	return exec(ctx, r, "bulk_upsert_products", func(s store.Store) error {
		return s.BulkUpsertProducts(ctx, products)
	})
}

func (r *Router) SetProductFeaturedStatus(ctx context.Context, id string, featured bool) error {
	return exec(ctx, r, "set_product_featured_status", func(s store.Store) error {
		return s.SetProductFeaturedStatus(ctx, id, featured)
	})
}

func (r *Router) GetCategories(ctx context.Context) ([]models.Category, error) {
	return query(ctx, r, "get_categories", func(s store.Store) ([]models.Category, error) {
		return s.GetCategories(ctx)
	})
}

func (r *Router) CreateCategory(ctx context.Context, category *models.Category) error {
	return exec(ctx, r, "create_category", func(s store.Store) error {
		return s.CreateCategory(ctx, category)
	})
}

func (r *Router) UpdateCategory(ctx context.Context, category *models.Category) error {
	return exec(ctx, r, "update_category", func(s store.Store) error {
		return s.UpdateCategory(ctx, category)
	})
}

func (r *Router) DeleteCategory(ctx context.Context, id string) error {
	return exec(ctx, r, "delete_category", func(s store.Store) error {
		return s.DeleteCategory(ctx, id)
	})
}

func (r *Router) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return query(ctx, r, "get_user_by_email", func(s store.Store) (*models.User, error) {
		return s.GetUserByEmail(ctx, email)
	})
}

func (r *Router) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return query(ctx, r, "get_all_users", func(s store.Store) ([]models.User, error) {
		return s.GetAllUsers(ctx)
	})
}

func (r *Router) GetCurrentUser(ctx context.Context, userID string) (*models.User, error) {
	return query(ctx, r, "get_current_user", func(s store.Store) (*models.User, error) {
		return s.GetCurrentUser(ctx, userID)
	})
}

func (r *Router) LoginUser(ctx context.Context, email, password string) (*models.User, error) {
	return query(ctx, r, "login_user", func(s store.Store) (*models.User, error) {
		return s.LoginUser(ctx, email, password)
	})
}

func (r *Router) RegisterUser(ctx context.Context, email, password string) (*models.User, error) {
	return query(ctx, r, "register_user", func(s store.Store) (*models.User, error) {
		return s.RegisterUser(ctx, email, password)
	})
}

func (r *Router) CreateUserAdmin(ctx context.Context, params store.CreateUserParams) (*models.User, error) {
	return query(ctx, r, "create_user_admin", func(s store.Store) (*models.User, error) {
		return s.CreateUserAdmin(ctx, params)
	})
}

func (r *Router) UpdateUser(ctx context.Context, user *models.User) error {
	return exec(ctx, r, "update_user", func(s store.Store) error {
		return s.UpdateUser(ctx, user)
	})
}

func (r *Router) UpdateUserDetails(ctx context.Context, user *models.User) error {
	return exec(ctx, r, "update_user_details", func(s store.Store) error {
		return s.UpdateUserDetails(ctx, user)
	})
}

func (r *Router) UpdateUserRole(ctx context.Context, userID string, role enums.UserRole) error {
	return exec(ctx, r, "update_user_role", func(s store.Store) error {
		return s.UpdateUserRole(ctx, userID, role)
	})
}

func (r *Router) UpdateUserPassword(ctx context.Context, userID, newPassword string) error {
	return exec(ctx, r, "update_user_password", func(s store.Store) error {
		return s.UpdateUserPassword(ctx, userID, newPassword)
	})
}

func (r *Router) SetUserMustChangePassword(ctx context.Context, userID string, mustChange bool) error {
	return exec(ctx, r, "set_user_must_change_password", func(s store.Store) error {
		return s.SetUserMustChangePassword(ctx, userID, mustChange)
	})
}

func (r *Router) DeleteUser(ctx context.Context, userID string) error {
	return exec(ctx, r, "delete_user", func(s store.Store) error {
		return s.DeleteUser(ctx, userID)
	})
}

func (r *Router) CreateOrder(ctx context.Context, userID string, items []store.NewOrderItem, total store.Money) (string, error) {
	return query(ctx, r, "create_order", func(s store.Store) (string, error) {
		return s.CreateOrder(ctx, userID, items, total)
	})
}

func (r *Router) GetOrders(ctx context.Context) ([]store.Order, error) {
	return query(ctx, r, "get_orders", func(s store.Store) ([]store.Order, error) {
		return s.GetOrders(ctx)
	})
}

func (r *Router) GetAllOrders(ctx context.Context) ([]store.Order, error) {
	return query(ctx, r, "get_all_orders", func(s store.Store) ([]store.Order, error) {
		return s.GetAllOrders(ctx)
	})
}

func (r *Router) GetOrdersByUser(ctx context.Context, userID string) ([]store.Order, error) {
	return query(ctx, r, "get_orders_by_user", func(s store.Store) ([]store.Order, error) {
		return s.GetOrdersByUser(ctx, userID)
	})
}

func (r *Router) UpdateOrderStatus(ctx context.Context, orderID string, status enums.OrderStatus) error {
	return exec(ctx, r, "update_order_status", func(s store.Store) error {
		return s.UpdateOrderStatus(ctx, orderID, status)
	})
}

func (r *Router) UpdateOrderNotes(ctx context.Context, orderID, notes string) error {
	return exec(ctx, r, "update_order_notes", func(s store.Store) error {
		return s.UpdateOrderNotes(ctx, orderID, notes)
	})
}

func (r *Router) DeleteOrder(ctx context.Context, orderID string) error {
	return exec(ctx, r, "delete_order", func(s store.Store) error {
		return s.DeleteOrder(ctx, orderID)
	})
}

func (r *Router) AddToWishlist(ctx context.Context, userID, productID string) error {
	return exec(ctx, r, "add_to_wishlist", func(s store.Store) error {
		return s.AddToWishlist(ctx, userID, productID)
	})
}

func (r *Router) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	return exec(ctx, r, "remove_from_wishlist", func(s store.Store) error {
		return s.RemoveFromWishlist(ctx, userID, productID)
	})
}

func (r *Router) GetWishlist(ctx context.Context, userID string) ([]string, error) {
	return query(ctx, r, "get_wishlist", func(s store.Store) ([]string, error) {
		return s.GetWishlist(ctx, userID)
	})
}

func (r *Router) GetWishlistProducts(ctx context.Context, userID string) ([]models.Product, error) {
	return query(ctx, r, "get_wishlist_products", func(s store.Store) ([]models.Product, error) {
		return s.GetWishlistProducts(ctx, userID)
	})
}

func (r *Router) IsInWishlist(ctx context.Context, userID, productID string) (bool, error) {
	return query(ctx, r, "is_in_wishlist", func(s store.Store) (bool, error) {
		return s.IsInWishlist(ctx, userID, productID)
	})
}

func (r *Router) GetBanners(ctx context.Context) ([]models.Banner, error) {
	return query(ctx, r, "get_banners", func(s store.Store) ([]models.Banner, error) {
		return s.GetBanners(ctx)
	})
}

func (r *Router) GetAllBanners(ctx context.Context) ([]models.Banner, error) {
	return query(ctx, r, "get_all_banners", func(s store.Store) ([]models.Banner, error) {
		return s.GetAllBanners(ctx)
	})
}

func (r *Router) CreateBanner(ctx context.Context, banner *models.Banner) error {
	return exec(ctx, r, "create_banner", func(s store.Store) error {
		return s.CreateBanner(ctx, banner)
	})
}

func (r *Router) UpdateBanner(ctx context.Context, banner *models.Banner) error {
	return exec(ctx, r, "update_banner", func(s store.Store) error {
		return s.UpdateBanner(ctx, banner)
	})
}

func (r *Router) DeleteBanner(ctx context.Context, id string) error {
	return exec(ctx, r, "delete_banner", func(s store.Store) error {
		return s.DeleteBanner(ctx, id)
	})
}

func (r *Router) GetPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	return query(ctx, r, "get_payment_methods", func(s store.Store) ([]models.PaymentMethod, error) {
		return s.GetPaymentMethods(ctx)
	})
}

func (r *Router) GetAllPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	return query(ctx, r, "get_all_payment_methods", func(s store.Store) ([]models.PaymentMethod, error) {
		return s.GetAllPaymentMethods(ctx)
	})
}

func (r *Router) CreatePaymentMethod(ctx context.Context, method *models.PaymentMethod) error {
	return exec(ctx, r, "create_payment_method", func(s store.Store) error {
		return s.CreatePaymentMethod(ctx, method)
	})
}

func (r *Router) UpdatePaymentMethod(ctx context.Context, method *models.PaymentMethod) error {
	return exec(ctx, r, "update_payment_method", func(s store.Store) error {
		return s.UpdatePaymentMethod(ctx, method)
	})
}

func (r *Router) DeletePaymentMethod(ctx context.Context, id string) error {
	return exec(ctx, r, "delete_payment_method", func(s store.Store) error {
		return s.DeletePaymentMethod(ctx, id)
	})
}

func (r *Router) GetStoreSettings(ctx context.Context) ([]models.StoreSetting, error) {
	return query(ctx, r, "get_store_settings", func(s store.Store) ([]models.StoreSetting, error) {
		return s.GetStoreSettings(ctx)
	})
}

func (r *Router) GetStoreSetting(ctx context.Context, key string) (string, error) {
	return query(ctx, r, "get_store_setting", func(s store.Store) (string, error) {
		return s.GetStoreSetting(ctx, key)
	})
}

func (r *Router) UpdateStoreSetting(ctx context.Context, key, value string) error {
	return exec(ctx, r, "update_store_setting", func(s store.Store) error {
		return s.UpdateStoreSetting(ctx, key, value)
	})
}

func (r *Router) UploadFile(ctx context.Context, input store.UploadInput) (string, error) {
	return query(ctx, r, "upload_file", func(s store.Store) (string, error) {
		return s.UploadFile(ctx, input)
	})
}
