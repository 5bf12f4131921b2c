package controllers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tiendalocal/storefront-backend/internal/store"
	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	"github.com/tiendalocal/storefront-backend/pkg/enums"
)

// View structs decouple the wire format from the gorm models. The JSON field
// names are part of the client contract and must stay stable.

type productView struct {
	ID             string            `json:"id"`
	SKU            string            `json:"sku"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          decimal.Decimal   `json:"price"`
	Category       string            `json:"category"`
	Image          string            `json:"image"`
	Images         []string          `json:"images"`
	Specifications map[string]string `json:"specifications"`
	IsFeatured     bool              `json:"is_featured"`
	IsActive       bool              `json:"is_active"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func productToView(p models.Product) productView {
	return productView{
		ID:             p.ID,
		SKU:            p.SKU,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		Category:       p.Category,
		Image:          p.Image,
		Images:         []string(p.Images),
		Specifications: map[string]string(p.Specifications),
		IsFeatured:     p.IsFeatured,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func productsToViews(products []models.Product) []productView {
	out := make([]productView, 0, len(products))
	for _, p := range products {
		out = append(out, productToView(p))
	}
	return out
}

type categoryView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

func categoryToView(c models.Category) categoryView {
	return categoryView{ID: c.ID, Name: c.Name, Icon: c.Icon, Image: c.Image, CreatedAt: c.CreatedAt}
}

func categoriesToViews(categories []models.Category) []categoryView {
	out := make([]categoryView, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryToView(c))
	}
	return out
}

type bannerView struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	ImageURL    string            `json:"image_url"`
	Link        string            `json:"link"`
	SortOrder   int               `json:"sort_order"`
	IsActive    bool              `json:"is_active"`
	Style       enums.BannerStyle `json:"style"`
}

func bannerToView(b models.Banner) bannerView {
	return bannerView{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		ImageURL:    b.ImageURL,
		Link:        b.Link,
		SortOrder:   b.SortOrder,
		IsActive:    b.IsActive,
		Style:       b.Style,
	}
}

func bannersToViews(banners []models.Banner) []bannerView {
	out := make([]bannerView, 0, len(banners))
	for _, b := range banners {
		out = append(out, bannerToView(b))
	}
	return out
}

type paymentMethodView struct {
	ID            string `json:"id"`
	BankName      string `json:"bank_name"`
	AccountType   string `json:"account_type"`
	AccountNumber string `json:"account_number"`
	AccountHolder string `json:"account_holder"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	IsActive      bool   `json:"is_active"`
	Instructions  string `json:"instructions"`
}

func paymentMethodToView(m models.PaymentMethod) paymentMethodView {
	return paymentMethodView{
		ID:            m.ID,
		BankName:      m.BankName,
		AccountType:   m.AccountType,
		AccountNumber: m.AccountNumber,
		AccountHolder: m.AccountHolder,
		Phone:         m.Phone,
		Email:         m.Email,
		IsActive:      m.IsActive,
		Instructions:  m.Instructions,
	}
}

func paymentMethodsToViews(methods []models.PaymentMethod) []paymentMethodView {
	out := make([]paymentMethodView, 0, len(methods))
	for _, m := range methods {
		out = append(out, paymentMethodToView(m))
	}
	return out
}

type settingView struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func settingToView(s models.StoreSetting) settingView {
	return settingView{Key: s.Key, Value: s.Value, Description: s.Description, UpdatedAt: s.UpdatedAt}
}

type userView struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Email              string         `json:"email"`
	Avatar             string         `json:"avatar"`
	Phone              string         `json:"phone"`
	City               string         `json:"city"`
	IsActive           bool           `json:"is_active"`
	Role               enums.UserRole `json:"role"`
	MustChangePassword bool           `json:"must_change_password"`
	CreatedAt          time.Time      `json:"created_at"`
}

func userToView(u models.User) userView {
	return userView{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		Avatar:             u.Avatar,
		Phone:              u.Phone,
		City:               u.City,
		IsActive:           u.IsActive,
		Role:               u.Role,
		MustChangePassword: u.MustChangePassword,
		CreatedAt:          u.CreatedAt,
	}
}

func usersToViews(users []models.User) []userView {
	out := make([]userView, 0, len(users))
	for _, u := range users {
		out = append(out, userToView(u))
	}
	return out
}

type orderItemView struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	ProductName  *string         `json:"product_name"`
	ProductImage *string         `json:"product_image"`
}

type orderView struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	Total     decimal.Decimal   `json:"total"`
	Status    enums.OrderStatus `json:"status"`
	Notes     string            `json:"notes"`
	CreatedAt time.Time         `json:"created_at"`
	Items     []orderItemView   `json:"items"`
	CanModify bool              `json:"can_modify"`
	CanReturn bool              `json:"can_return"`
}

func orderToView(o store.Order) orderView {
	items := make([]orderItemView, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemView{
			ID:           item.ID,
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			Price:        item.Price,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
		})
	}
	return orderView{
		ID:        o.ID,
		UserID:    o.UserID,
		Total:     o.Total,
		Status:    o.Status,
		Notes:     o.Notes,
		CreatedAt: o.CreatedAt,
		Items:     items,
		CanModify: o.Status.CustomerCanModify(),
		CanReturn: o.Status.CustomerCanRequestReturn(),
	}
}

func ordersToViews(orders []store.Order) []orderView {
	out := make([]orderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderToView(o))
	}
	return out
}

type notificationView struct {
	ID        string     `json:"id"`
	EventID   string     `json:"event_id"`
	OrderID   string     `json:"order_id"`
	UserID    string     `json:"user_id"`
	Status    string     `json:"status"`
	Message   string     `json:"message"`
	ReadAt    *time.Time `json:"read_at"`
	CreatedAt time.Time  `json:"created_at"`
}

func notificationToView(n models.Notification) notificationView {
	return notificationView{
		ID:        n.ID,
		EventID:   n.EventID,
		OrderID:   n.OrderID,
		UserID:    n.UserID,
		Status:    n.Status,
		Message:   n.Message,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

func notificationsToViews(notifications []models.Notification) []notificationView {
	out := make([]notificationView, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, notificationToView(n))
	}
	return out
}
