package remote

import (
	"context"
	"time"

	pubsub "cloud.google.com/go/pubsub/v2"
	"github.com/google/uuid"

	"github.com/tiendalocal/storefront-backend/internal/events"
	"github.com/tiendalocal/storefront-backend/internal/store"
	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	"github.com/tiendalocal/storefront-backend/pkg/enums"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
	"github.com/tiendalocal/storefront-backend/pkg/identifier"
)

const publishTimeout = 15 * time.Second

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
	db := s.conn(ctx)
	if err := db.Omit("Items").Create(&order).Error; err != nil {
		return "", backendErr(err, "creating order")
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
			return "", backendErr(err, "creating order item")
		}
	}
	return order.ID, nil
}

func (s *Store) GetOrders(ctx context.Context) ([]store.Order, error) {
	return s.loadOrders(ctx, "")
}

// GetAllOrders is the admin listing and returns the same unfiltered set
// as GetOrders.
func (s *Store) GetAllOrders(ctx context.Context) ([]store.Order, error) {
	return s.GetOrders(ctx)
}

func (s *Store) GetOrdersByUser(ctx context.Context, userID string) ([]store.Order, error) {
	return s.loadOrders(ctx, userID)
}

// UpdateOrderStatus persists the transition and then publishes an event
// for the notification worker. A publish failure is logged, not returned;
// the state change already happened and must not look failed.
func (s *Store) UpdateOrderStatus(ctx context.Context, orderID string, status enums.OrderStatus) error {
	if !status.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown order status")
	}
	var order models.Order
	err := s.conn(ctx).First(&order, "id = ?", orderID).Error
	if isNotFound(err) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	if err != nil {
		return backendErr(err, "loading order")
	}
	if err := s.conn(ctx).Model(&models.Order{}).Where("id = ?", orderID).Update("status", status).Error; err != nil {
		return backendErr(err, "updating order status")
	}
	s.publishStatusChange(ctx, order, status)
	return nil
}

func (s *Store) publishStatusChange(ctx context.Context, order models.Order, status enums.OrderStatus) {
	if s.events == nil {
		return
	}
	envelope := events.OrderStatusChanged{
		EventID:    uuid.NewString(),
		OrderID:    order.ID,
		UserID:     order.UserID,
		Status:     string(status),
		OccurredAt: time.Now().UTC(),
	}
	data, err := envelope.Encode()
	if err != nil {
		s.logError(ctx, "encoding order event", err)
		return
	}
	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	result := s.events.Publish(publishCtx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"event_id":   envelope.EventID,
			"event_type": events.TypeOrderStatusChanged,
			"order_id":   order.ID,
		},
	})
	if result == nil {
		return
	}
	if _, err := result.Get(publishCtx); err != nil {
		s.logError(ctx, "publishing order event", err)
	}
}

func (s *Store) logError(ctx context.Context, msg string, err error) {
	if s.log == nil {
		return
	}
	s.log.Error(ctx, msg, err)
}

func (s *Store) UpdateOrderNotes(ctx context.Context, orderID, notes string) error {
	err := s.conn(ctx).Model(&models.Order{}).Where("id = ?", orderID).Update("notes", notes).Error
	if err != nil {
		return backendErr(err, "updating order notes")
	}
	return nil
}

// DeleteOrder removes the line items first so a partial failure never
// leaves lines pointing at a missing order.
func (s *Store) DeleteOrder(ctx context.Context, orderID string) error {
	db := s.conn(ctx)
	if err := db.Delete(&models.OrderItem{}, "order_id = ?", orderID).Error; err != nil {
		return backendErr(err, "deleting order items")
	}
	if err := db.Delete(&models.Order{}, "id = ?", orderID).Error; err != nil {
		return backendErr(err, "deleting order")
	}
	return nil
}

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
// image resolve through a left join, so a deleted product yields nil
// fields rather than an error.
func (s *Store) loadOrders(ctx context.Context, userID string) ([]store.Order, error) {
	db := s.conn(ctx)
	rows := []models.Order{}
	q := db.Model(&models.Order{}).Order("created_at desc")
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, backendErr(err, "listing orders")
	}

	items := []itemRow{}
	iq := db.Table("order_items").
		Select("order_items.id, order_items.order_id, order_items.product_id, order_items.quantity, order_items.price, products.name as product_name, products.image as product_image").
		Joins("LEFT JOIN products ON products.id = order_items.product_id")
	if userID != "" {
		iq = iq.Joins("JOIN orders ON orders.id = order_items.order_id").Where("orders.user_id = ?", userID)
	}
	if err := iq.Scan(&items).Error; err != nil {
		return nil, backendErr(err, "listing order items")
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
