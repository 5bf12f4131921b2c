package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tiendalocal/storefront-backend/api/responses"
	"github.com/tiendalocal/storefront-backend/api/validators"
	"github.com/tiendalocal/storefront-backend/internal/store"
	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	"github.com/tiendalocal/storefront-backend/pkg/enums"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
	"github.com/tiendalocal/storefront-backend/pkg/logger"
)

// ListBanners returns the active promotional slots in display order.
func ListBanners(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		banners, err := st.GetBanners(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, bannersToViews(banners))
	}
}

// ListAllBanners returns every banner for the back office.
func ListAllBanners(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		banners, err := st.GetAllBanners(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, bannersToViews(banners))
	}
}

type bannerRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Link        string `json:"link"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active"`
	Style       string `json:"style"`
}

func (req bannerRequest) toModel(id string) (*models.Banner, error) {
	style := enums.BannerStyleSplit
	if req.Style != "" {
		style = enums.BannerStyle(req.Style)
		if !style.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid banner style")
		}
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &models.Banner{
		ID:          id,
		Title:       validators.SanitizeString(req.Title, 200),
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Link:        req.Link,
		SortOrder:   req.SortOrder,
		IsActive:    active,
		Style:       style,
	}, nil
}

// CreateBanner adds a promotional slot.
func CreateBanner(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body bannerRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		banner, err := body.toModel("")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := st.CreateBanner(r.Context(), banner); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, bannerToView(*banner))
	}
}

// UpdateBanner edits a promotional slot.
func UpdateBanner(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var body bannerRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		banner, err := body.toModel(id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := st.UpdateBanner(r.Context(), banner); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, bannerToView(*banner))
	}
}

// DeleteBanner removes a promotional slot.
func DeleteBanner(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := st.DeleteBanner(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
