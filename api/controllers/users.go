package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tiendalocal/storefront-backend/api/middleware"
	"github.com/tiendalocal/storefront-backend/api/responses"
	"github.com/tiendalocal/storefront-backend/api/validators"
	"github.com/tiendalocal/storefront-backend/internal/store"
	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	"github.com/tiendalocal/storefront-backend/pkg/enums"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
	"github.com/tiendalocal/storefront-backend/pkg/logger"
)

// ListUsers returns every account for the back office.
func ListUsers(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := st.GetAllUsers(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, usersToViews(users))
	}
}

type createUserRequest struct {
	Name               string `json:"name" validate:"required"`
	Email              string `json:"email" validate:"required,email"`
	Password           string `json:"password" validate:"required,min=6"`
	Avatar             string `json:"avatar"`
	Phone              string `json:"phone"`
	City               string `json:"city"`
	Role               string `json:"role"`
	IsActive           *bool  `json:"is_active"`
	MustChangePassword bool   `json:"must_change_password"`
}

// CreateUser provisions an account from the back office, typically with a
// temporary credential the user must rotate at first login.
func CreateUser(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body createUserRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		role := enums.UserRoleUser
		if body.Role != "" {
			parsed, err := enums.ParseUserRole(body.Role)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid role"))
				return
			}
			role = parsed
		}

		active := true
		if body.IsActive != nil {
			active = *body.IsActive
		}

		user, err := st.CreateUserAdmin(r.Context(), store.CreateUserParams{
			Name:               validators.SanitizeString(body.Name, 200),
			Email:              validators.SanitizeString(body.Email, 200),
			Password:           body.Password,
			Avatar:             body.Avatar,
			Phone:              body.Phone,
			City:               body.City,
			Role:               role,
			IsActive:           active,
			MustChangePassword: body.MustChangePassword,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, userToView(*user))
	}
}

type updateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Avatar   string `json:"avatar"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	IsActive *bool  `json:"is_active"`
}

// UpdateUserDetails edits an account's profile fields.
func UpdateUserDetails(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var body updateUserRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		current, err := st.GetCurrentUser(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		active := current.IsActive
		if body.IsActive != nil {
			active = *body.IsActive
		}

		user := &models.User{
			ID:       id,
			Name:     validators.SanitizeString(body.Name, 200),
			Avatar:   body.Avatar,
			Phone:    body.Phone,
			City:     body.City,
			IsActive: active,
		}
		if err := st.UpdateUserDetails(r.Context(), user); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"id": id, "status": "updated"})
	}
}

type userRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// UpdateUserRole promotes or demotes an account. Admins cannot demote
// themselves, which keeps at least one admin reachable.
func UpdateUserRole(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if middleware.UserIDFromContext(r.Context()) == id {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "cannot change your own role"))
			return
		}

		var body userRoleRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		role, err := enums.ParseUserRole(body.Role)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid role"))
			return
		}

		if err := st.UpdateUserRole(r.Context(), id, role); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"id": id, "role": string(role)})
	}
}

type mustChangePasswordRequest struct {
	MustChangePassword bool `json:"must_change_password"`
}

// SetUserMustChangePassword flags an account for a forced credential rotation.
func SetUserMustChangePassword(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var body mustChangePasswordRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := st.SetUserMustChangePassword(r.Context(), id, body.MustChangePassword); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"id": id, "must_change_password": body.MustChangePassword})
	}
}

// DeleteUser removes an account and everything hanging off it: wishlist
// entries, order lines, orders.
func DeleteUser(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if middleware.UserIDFromContext(r.Context()) == id {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "cannot delete your own account"))
			return
		}

		if err := st.DeleteUser(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
