package local

import (
	"context"

	"gorm.io/gorm"

	"github.com/tiendalocal/storefront-backend/internal/store"
	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	"github.com/tiendalocal/storefront-backend/pkg/enums"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
	"github.com/tiendalocal/storefront-backend/pkg/identifier"
)

// CreateOrder inserts the order row and its lines sequentially. The unit
// price on each line is the caller's checkout price, stored verbatim.
func (s *Store) CreateOrder(ctx context.Context, userID string, items []store.NewOrderItem, total store.Money) (string, error) {
	if len(items) == 0 {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "order has no items")
	}
	notes := ""
	order := models.Order{
		ID:     identifier.New(identifier.PrefixOrder),
		UserID: userID,
		Total:  total,
		Status: enums.OrderStatusPending,
		Notes:  &notes,
	}
	err := s.mutate(ctx, func(db *gorm.DB) error {
		if err := db.Omit("Items").Create(&order).Error; err != nil {
			return err
		}
		for _, item := range items {
			line := models.OrderItem{
				ID:        identifier.New(identifier.PrefixOrderItem),
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			}
			if err := db.Create(&line).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", localErr(err, "creating order")
	}
	return order.ID, nil
}

func (s *Store) GetOrders(ctx context.Context) ([]store.Order, error) {
	orders, err := s.loadOrders(ctx, "")
	if err != nil {
		s.warn(ctx, "GetOrders", err)
		return []store.Order{}, nil
	}
	return orders, nil
}

// GetAllOrders is the admin listing and returns the same unfiltered set
// as GetOrders.
func (s *Store) GetAllOrders(ctx context.Context) ([]store.Order, error) {
	return s.GetOrders(ctx)
}

func (s *Store) GetOrdersByUser(ctx context.Context, userID string) ([]store.Order, error) {
	orders, err := s.loadOrders(ctx, userID)
	if err != nil {
		s.warn(ctx, "GetOrdersByUser", err)
		return []store.Order{}, nil
	}
	return orders, nil
}

func (s *Store) UpdateOrderStatus(ctx context.Context, orderID string, status enums.OrderStatus) error {
	if !status.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown order status")
	}
	err := s.mutate(ctx, func(db *gorm.DB) error {
		return db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", status).Error
	})
	if err != nil {
		return localErr(err, "updating order status")
	}
	return nil
}

func (s *Store) UpdateOrderNotes(ctx context.Context, orderID, notes string) error {
	err := s.mutate(ctx, func(db *gorm.DB) error {
		return db.Model(&models.Order{}).Where("id = ?", orderID).Update("notes", notes).Error
	})
	if err != nil {
		return localErr(err, "updating order notes")
	}
	return nil
}

// DeleteOrder removes the line items first so a failure never leaves an
// order whose lines are gone but whose row survives pointing at nothing.
func (s *Store) DeleteOrder(ctx context.Context, orderID string) error {
	err := s.mutate(ctx, func(db *gorm.DB) error {
		if err := db.Delete(&models.OrderItem{}, "order_id = ?", orderID).Error; err != nil {
			return err
		}
		return db.Delete(&models.Order{}, "id = ?", orderID).Error
	})
	if err != nil {
		return localErr(err, "deleting order")
	}
	return nil
}

// itemRow is the join shape for order lines with product resolution.
// Name and image are nil when the product has since been deleted.
type itemRow struct {
	ID           string
	OrderID      string
	ProductID    string
	Quantity     int
	Price        store.Money
	ProductName  *string
	ProductImage *string
}

// loadOrders reads orders newest first with their lines. Product name and
// image are resolved at read time with a left join, so a deleted product
// yields nil fields rather than an error.
func (s *Store) loadOrders(ctx context.Context, userID string) ([]store.Order, error) {
	rows := []models.Order{}
	items := []itemRow{}
	err := s.read(ctx, func(db *gorm.DB) error {
		q := db.Model(&models.Order{}).Order("created_at desc")
		if userID != "" {
			q = q.Where("user_id = ?", userID)
		}
		if err := q.Find(&rows).Error; err != nil {
			return err
		}
		iq := db.Table("order_items").
			Select("order_items.id, order_items.order_id, order_items.product_id, order_items.quantity, order_items.price, products.name as product_name, products.image as product_image").
			Joins("LEFT JOIN products ON products.id = order_items.product_id")
		if userID != "" {
			iq = iq.Joins("JOIN orders ON orders.id = order_items.order_id").Where("orders.user_id = ?", userID)
		}
		return iq.Scan(&items).Error
	})
	if err != nil {
		return nil, err
	}

	byOrder := make(map[string][]store.OrderItem, len(rows))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], store.OrderItem{
			ID:           item.ID,
			OrderID:      item.OrderID,
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			Price:        item.Price,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
		})
	}

	out := make([]store.Order, 0, len(rows))
	for _, row := range rows {
		notes := ""
		if row.Notes != nil {
			notes = *row.Notes
		}
		lines := byOrder[row.ID]
		if lines == nil {
			lines = []store.OrderItem{}
		}
		out = append(out, store.Order{
			ID:        row.ID,
			UserID:    row.UserID,
			Total:     row.Total,
			Status:    row.Status,
			Notes:     notes,
			CreatedAt: row.CreatedAt,
			Items:     lines,
		})
	}
	return out, nil
}
