package controllers

import (
	"testing"

	"github.com/tiendalocal/storefront-backend/internal/store"
	"github.com/tiendalocal/storefront-backend/pkg/enums"
)

func TestOrderViewCustomerFlags(t *testing.T) {
	cases := []struct {
		status    enums.OrderStatus
		canModify bool
		canReturn bool
	}{
		{enums.OrderStatusPending, true, false},
		{enums.OrderStatusOnHold, true, false},
		{enums.OrderStatusReceived, true, false},
		{enums.OrderStatusProcessing, false, false},
		{enums.OrderStatusShipped, false, false},
		{enums.OrderStatusDelivered, false, true},
		{enums.OrderStatusCompleted, false, true},
		{enums.OrderStatusCancelled, false, false},
	}
	for _, tc := range cases {
		view := orderToView(store.Order{ID: "o1", Status: tc.status})
		if view.CanModify != tc.canModify {
			t.Fatalf("%s: can_modify = %v, want %v", tc.status, view.CanModify, tc.canModify)
		}
		if view.CanReturn != tc.canReturn {
			t.Fatalf("%s: can_return = %v, want %v", tc.status, view.CanReturn, tc.canReturn)
		}
	}
}

func TestMyOrdersActiveCount(t *testing.T) {
	orders := []store.Order{
		{ID: "o1", Status: enums.OrderStatusPending},
		{ID: "o2", Status: enums.OrderStatusShipped},
		{ID: "o3", Status: enums.OrderStatusPending},
	}
	if got := countActiveOrders(orders); got != 2 {
		t.Fatalf("expected active count 2, got %d", got)
	}
	if got := countActiveOrders(nil); got != 0 {
		t.Fatalf("expected zero count for no orders, got %d", got)
	}
}
