package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	"github.com/tiendalocal/storefront-backend/pkg/enums"
)

// Money is the fixed-point amount type used for prices and totals.
type Money = decimal.Decimal

// NewOrderItem is one checkout line. Price is the unit price the caller saw
// at checkout time; it is stored verbatim so later catalog edits never
// change the order.
type NewOrderItem struct {
	ProductID string
	Quantity  int
	Price     Money
}

// Order is the read shape for order listings: the order row plus its lines
// with product name/image resolved at read time. A line whose product was
// hard-deleted keeps nil name/image.
type Order struct {
	ID        string
	UserID    string
	Total     Money
	Status    enums.OrderStatus
	Notes     string
	CreatedAt time.Time
	Items     []OrderItem
}

// OrderItem is one line of an Order read result.
type OrderItem struct {
	ID           string
	OrderID      string
	ProductID    string
	Quantity     int
	Price        Money
	ProductName  *string
	ProductImage *string
}

// CreateUserParams is the admin-side user creation payload.
type CreateUserParams struct {
	Name               string
	Email              string
	Password           string
	Avatar             string
	Phone              string
	City               string
	Role               enums.UserRole
	IsActive           bool
	MustChangePassword bool
}

// UploadInput is a binary asset destined for object storage.
type UploadInput struct {
	Bucket      string
	ObjectName  string
	ContentType string
	Data        []byte
}

// FilterActive returns only the products a shopper should see. Admin
// listings use the unfiltered slice.
func FilterActive(products []models.Product) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out
}

// ComputeTotal sums quantity times unit price across the lines.
func ComputeTotal(items []NewOrderItem) Money {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
