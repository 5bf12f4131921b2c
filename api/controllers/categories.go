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

// ListCategories returns the browse taxonomy.
func ListCategories(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := st.GetCategories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, categoriesToViews(categories))
	}
}

type categoryRequest struct {
	Name  string `json:"name" validate:"required"`
	Icon  string `json:"icon"`
	Image string `json:"image"`
}

// CreateCategory adds a browse category.
func CreateCategory(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body categoryRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category := &models.Category{
			Name:  validators.SanitizeString(body.Name, 100),
			Icon:  body.Icon,
			Image: body.Image,
		}
		if err := st.CreateCategory(r.Context(), category); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, categoryToView(*category))
	}
}

// UpdateCategory renames or restyles a category.
func UpdateCategory(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var body categoryRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category := &models.Category{
			ID:    id,
			Name:  validators.SanitizeString(body.Name, 100),
			Icon:  body.Icon,
			Image: body.Image,
		}
		if err := st.UpdateCategory(r.Context(), category); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, categoryToView(*category))
	}
}

// DeleteCategory removes a category. Products keep their category name and
// simply stop matching a browse entry.
func DeleteCategory(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := st.DeleteCategory(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
