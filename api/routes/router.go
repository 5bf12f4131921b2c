package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tiendalocal/storefront-backend/api/controllers"
	"github.com/tiendalocal/storefront-backend/api/middleware"
	"github.com/tiendalocal/storefront-backend/internal/auth"
	"github.com/tiendalocal/storefront-backend/internal/store"
	"github.com/tiendalocal/storefront-backend/pkg/auth/session"
	"github.com/tiendalocal/storefront-backend/pkg/config"
	"github.com/tiendalocal/storefront-backend/pkg/logger"
	"github.com/tiendalocal/storefront-backend/pkg/redis"
)

// RouterParams bundles everything the HTTP surface needs.
type RouterParams struct {
	Config        *config.Config
	Logger        *logger.Logger
	Store         store.Store
	AuthService   auth.Service
	Sessions      session.AccessSessionChecker
	Notifications controllers.NotificationReader
	RedisClient   *redis.Client
	Readiness     map[string]controllers.Pinger
}

// NewRouter builds the chi handler tree.
func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger
	st := p.Store

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	limitLogin := passthrough()
	limitRegister := passthrough()
	if p.RedisClient != nil {
		loginPolicy := middleware.NewAuthRateLimitPolicy(
			"login",
			cfg.RateLimit.AuthWindow,
			cfg.RateLimit.LoginIPLimit,
			cfg.RateLimit.LoginEmailLimit,
		)
		registerPolicy := middleware.NewAuthRateLimitPolicy(
			"register",
			cfg.RateLimit.AuthWindow,
			cfg.RateLimit.RegisterIPLimit,
			cfg.RateLimit.RegisterEmailLimit,
		)
		limitLogin = middleware.AuthRateLimit(loginPolicy, p.RedisClient, logg)
		limitRegister = middleware.AuthRateLimit(registerPolicy, p.RedisClient, logg)
	}

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.Readiness))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Catalog reads are public; they are the storefront's browse surface.
		r.Get("/products", controllers.ListProducts(st, logg))
		r.Get("/products/{id}", controllers.GetProduct(st, logg))
		r.Get("/categories", controllers.ListCategories(st, logg))
		r.Get("/banners", controllers.ListBanners(st, logg))
		r.Get("/payment-methods", controllers.ListPaymentMethods(st, logg))
		r.Get("/settings", controllers.ListStoreSettings(st, logg))
		r.Get("/settings/{key}", controllers.GetStoreSetting(st, logg))

		r.Route("/auth", func(r chi.Router) {
			r.With(limitLogin).Post("/login", controllers.AuthLogin(p.AuthService, logg))
			r.With(limitRegister).Post("/register", controllers.AuthRegister(p.AuthService, logg))
			r.Post("/refresh", controllers.AuthRefresh(p.AuthService, logg))
			r.Post("/logout", controllers.AuthLogout(p.AuthService, logg))
		})

		// Shopper endpoints.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, p.Sessions, logg))

			r.Get("/auth/me", controllers.AuthMe(st, logg))
			r.Post("/auth/change-password", controllers.AuthChangePassword(p.AuthService, logg))

			r.Post("/orders", controllers.Checkout(st, logg))
			r.Get("/orders/mine", controllers.MyOrders(st, logg))

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", controllers.GetWishlist(st, logg))
				r.Get("/products", controllers.GetWishlistProducts(st, logg))
				r.Post("/{productID}", controllers.AddToWishlist(st, logg))
				r.Delete("/{productID}", controllers.RemoveFromWishlist(st, logg))
			})
		})
	})

	// Back office.
	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, p.Sessions, logg))
		r.Use(middleware.RequireRole("admin", logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListAllProducts(st, logg))
			r.Post("/", controllers.CreateProduct(st, logg))
			r.Post("/bulk", controllers.BulkUpsertProducts(st, logg))
			r.Put("/{id}", controllers.UpdateProduct(st, logg))
			r.Patch("/{id}/featured", controllers.SetProductFeatured(st, logg))
			r.Delete("/{id}", controllers.DeleteProduct(st, logg))
		})

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", controllers.CreateCategory(st, logg))
			r.Put("/{id}", controllers.UpdateCategory(st, logg))
			r.Delete("/{id}", controllers.DeleteCategory(st, logg))
		})

		r.Route("/banners", func(r chi.Router) {
			r.Get("/", controllers.ListAllBanners(st, logg))
			r.Post("/", controllers.CreateBanner(st, logg))
			r.Put("/{id}", controllers.UpdateBanner(st, logg))
			r.Delete("/{id}", controllers.DeleteBanner(st, logg))
		})

		r.Route("/payment-methods", func(r chi.Router) {
			r.Get("/", controllers.ListAllPaymentMethods(st, logg))
			r.Post("/", controllers.CreatePaymentMethod(st, logg))
			r.Put("/{id}", controllers.UpdatePaymentMethod(st, logg))
			r.Delete("/{id}", controllers.DeletePaymentMethod(st, logg))
		})

		r.Put("/settings/{key}", controllers.UpdateStoreSetting(st, logg))

		r.Route("/users", func(r chi.Router) {
			r.Get("/", controllers.ListUsers(st, logg))
			r.Post("/", controllers.CreateUser(st, logg))
			r.Put("/{id}", controllers.UpdateUserDetails(st, logg))
			r.Patch("/{id}/role", controllers.UpdateUserRole(st, logg))
			r.Patch("/{id}/must-change-password", controllers.SetUserMustChangePassword(st, logg))
			r.Delete("/{id}", controllers.DeleteUser(st, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.ListOrders(st, logg))
			r.Patch("/{id}/status", controllers.UpdateOrderStatus(st, logg))
			r.Patch("/{id}/notes", controllers.UpdateOrderNotes(st, logg))
			r.Delete("/{id}", controllers.DeleteOrder(st, logg))
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", controllers.ListNotifications(p.Notifications, logg))
			r.Get("/unread-count", controllers.CountUnreadNotifications(p.Notifications, logg))
			r.Post("/{id}/read", controllers.MarkNotificationRead(p.Notifications, logg))
			r.Post("/read-all", controllers.MarkAllNotificationsRead(p.Notifications, logg))
		})

		r.Post("/uploads", controllers.UploadFile(st, logg))
	})

	return r
}

func passthrough() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler { return next }
}
