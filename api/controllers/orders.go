package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/tiendalocal/storefront-backend/api/middleware"
	"github.com/tiendalocal/storefront-backend/api/responses"
	"github.com/tiendalocal/storefront-backend/api/validators"
	"github.com/tiendalocal/storefront-backend/internal/store"
	"github.com/tiendalocal/storefront-backend/pkg/enums"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
	"github.com/tiendalocal/storefront-backend/pkg/logger"
)

type checkoutItem struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	Price     decimal.Decimal `json:"price"`
}

type checkoutRequest struct {
	Items []checkoutItem `json:"items" validate:"required,min=1,dive"`
}

// Checkout turns the submitted cart into an order. The unit prices are the
// ones the shopper saw; the total is recomputed server-side from them.
func Checkout(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())
		if userID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		var body checkoutRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items := make([]store.NewOrderItem, 0, len(body.Items))
		for _, item := range body.Items {
			if item.Price.IsNegative() {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative"))
				return
			}
			items = append(items, store.NewOrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			})
		}

		orderID, err := st.CreateOrder(r.Context(), userID, items, store.ComputeTotal(items))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{"order_id": orderID})
	}
}

type myOrdersPage struct {
	Orders      []orderView `json:"orders"`
	ActiveCount int         `json:"active_count"`
}

func countActiveOrders(orders []store.Order) int {
	count := 0
	for _, o := range orders {
		if o.Status.CountsAsActive() {
			count++
		}
	}
	return count
}

// MyOrders lists the caller's orders, newest first, along with the count
// powering the active-order badge.
func MyOrders(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())
		if userID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		orders, err := st.GetOrdersByUser(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, myOrdersPage{
			Orders:      ordersToViews(orders),
			ActiveCount: countActiveOrders(orders),
		})
	}
}

// ListOrders returns every order for the back office.
func ListOrders(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := st.GetAllOrders(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, ordersToViews(orders))
	}
}

type orderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateOrderStatus moves an order through its lifecycle and fans the change
// out to the notification pipeline.
func UpdateOrderStatus(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "id")

		var body orderStatusRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParseOrderStatus(body.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
			return
		}

		if err := st.UpdateOrderStatus(r.Context(), orderID, status); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"id": orderID, "status": string(status)})
	}
}

type orderNotesRequest struct {
	Notes string `json:"notes"`
}

// UpdateOrderNotes replaces the back-office notes on an order.
func UpdateOrderNotes(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "id")

		var body orderNotesRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := st.UpdateOrderNotes(r.Context(), orderID, body.Notes); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"id": orderID, "status": "updated"})
	}
}

// DeleteOrder removes an order and its lines.
func DeleteOrder(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := chi.URLParam(r, "id")
		if err := st.DeleteOrder(r.Context(), orderID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
