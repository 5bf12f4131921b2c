package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tiendalocal/storefront-backend/api/responses"
	"github.com/tiendalocal/storefront-backend/api/validators"
	"github.com/tiendalocal/storefront-backend/internal/store"
	"github.com/tiendalocal/storefront-backend/pkg/logger"
)

// ListStoreSettings returns every storefront configuration row.
func ListStoreSettings(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := st.GetStoreSettings(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		out := make([]settingView, 0, len(settings))
		for _, s := range settings {
			out = append(out, settingToView(s))
		}
		responses.WriteSuccess(w, out)
	}
}

// GetStoreSetting returns a single configuration value by key.
func GetStoreSetting(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		value, err := st.GetStoreSetting(r.Context(), key)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"key": key, "value": value})
	}
}

type settingRequest struct {
	Value string `json:"value"`
}

// UpdateStoreSetting upserts a configuration value.
func UpdateStoreSetting(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")

		var body settingRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := st.UpdateStoreSetting(r.Context(), key, body.Value); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"key": key, "value": body.Value})
	}
}
