package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tiendalocal/storefront-backend/api/responses"
	"github.com/tiendalocal/storefront-backend/api/validators"
	"github.com/tiendalocal/storefront-backend/internal/store"
	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	"github.com/tiendalocal/storefront-backend/pkg/logger"
)

// ListPaymentMethods returns the active payment channels shown at checkout.
func ListPaymentMethods(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		methods, err := st.GetPaymentMethods(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, paymentMethodsToViews(methods))
	}
}

// ListAllPaymentMethods returns every payment channel for the back office.
func ListAllPaymentMethods(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		methods, err := st.GetAllPaymentMethods(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, paymentMethodsToViews(methods))
	}
}

type paymentMethodRequest struct {
	BankName      string `json:"bank_name" validate:"required"`
	AccountType   string `json:"account_type"`
	AccountNumber string `json:"account_number"`
	AccountHolder string `json:"account_holder"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	IsActive      *bool  `json:"is_active"`
	Instructions  string `json:"instructions"`
}

func (req paymentMethodRequest) toModel(id string) *models.PaymentMethod {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &models.PaymentMethod{
		ID:            id,
		BankName:      validators.SanitizeString(req.BankName, 100),
		AccountType:   req.AccountType,
		AccountNumber: req.AccountNumber,
		AccountHolder: req.AccountHolder,
		Phone:         req.Phone,
		Email:         req.Email,
		IsActive:      active,
		Instructions:  req.Instructions,
	}
}

// CreatePaymentMethod adds a manual payment channel.
func CreatePaymentMethod(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body paymentMethodRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		method := body.toModel("")
		if err := st.CreatePaymentMethod(r.Context(), method); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, paymentMethodToView(*method))
	}
}

// UpdatePaymentMethod edits a manual payment channel.
func UpdatePaymentMethod(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var body paymentMethodRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		method := body.toModel(id)
		if err := st.UpdatePaymentMethod(r.Context(), method); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, paymentMethodToView(*method))
	}
}

// DeletePaymentMethod removes a manual payment channel.
func DeletePaymentMethod(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := st.DeletePaymentMethod(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
