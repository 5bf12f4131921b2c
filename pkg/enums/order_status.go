package enums

import "fmt"

// OrderStatus tracks the lifecycle of a customer order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusReceived   OrderStatus = "received"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusOnHold     OrderStatus = "on_hold"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusIssue      OrderStatus = "issue"
)

var validOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusReceived,
	OrderStatusProcessing,
	OrderStatusOnHold,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCompleted,
	OrderStatusCancelled,
	OrderStatusIssue,
}

// String implements fmt.Stringer.
func (o OrderStatus) String() string {
	return string(o)
}

// IsValid reports whether the value is a known OrderStatus.
func (o OrderStatus) IsValid() bool {
	for _, candidate := range validOrderStatuses {
		if candidate == o {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed.
func (o OrderStatus) IsTerminal() bool {
	return o == OrderStatusCancelled || o == OrderStatusIssue
}

// CustomerCanModify reports whether the customer may still edit or cancel
// the order themselves.
func (o OrderStatus) CustomerCanModify() bool {
	switch o {
	case OrderStatusPending, OrderStatusOnHold, OrderStatusReceived:
		return true
	}
	return false
}

// CustomerCanRequestReturn reports whether the order is far enough along
// for a return request.
func (o OrderStatus) CustomerCanRequestReturn() bool {
	return o == OrderStatusDelivered || o == OrderStatusCompleted
}

// CountsAsActive reports whether the order counts toward the customer's
// active-order badge.
func (o OrderStatus) CountsAsActive() bool {
	return o == OrderStatusPending
}

// ParseOrderStatus converts raw input into an OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range validOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}
