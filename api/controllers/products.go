package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/tiendalocal/storefront-backend/api/responses"
	"github.com/tiendalocal/storefront-backend/api/validators"
	"github.com/tiendalocal/storefront-backend/internal/store"
	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	dbtypes "github.com/tiendalocal/storefront-backend/pkg/db/types"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
	"github.com/tiendalocal/storefront-backend/pkg/logger"
)

// ListProducts returns the shopper-facing catalog: active products only.
func ListProducts(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := st.GetProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, productsToViews(store.FilterActive(products)))
	}
}

// ListAllProducts returns every product including retired ones.
func ListAllProducts(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := st.GetProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, productsToViews(products))
	}
}

// GetProduct returns a single product by id.
func GetProduct(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		product, err := st.GetProductByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, productToView(*product))
	}
}

type productRequest struct {
	SKU            string            `json:"sku"`
	Name           string            `json:"name" validate:"required"`
	Description    string            `json:"description"`
	Price          decimal.Decimal   `json:"price" validate:"required"`
	Category       string            `json:"category"`
	Image          string            `json:"image"`
	Images         []string          `json:"images"`
	Specifications map[string]string `json:"specifications"`
	IsFeatured     bool              `json:"is_featured"`
	IsActive       *bool             `json:"is_active"`
}

func (req productRequest) toModel(id string) *models.Product {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	images := req.Images
	if images == nil {
		images = []string{}
	}
	specs := req.Specifications
	if specs == nil {
		specs = map[string]string{}
	}
	return &models.Product{
		ID:             id,
		SKU:            validators.SanitizeString(req.SKU, 64),
		Name:           validators.SanitizeString(req.Name, 200),
		Description:    req.Description,
		Price:          req.Price,
		Category:       validators.SanitizeString(req.Category, 100),
		Image:          req.Image,
		Images:         dbtypes.StringList(images),
		Specifications: dbtypes.StringMap(specs),
		IsFeatured:     req.IsFeatured,
		IsActive:       active,
	}
}

// CreateProduct adds a catalog listing.
func CreateProduct(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body productRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if body.Price.IsNegative() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative"))
			return
		}

		product := body.toModel("")
		if err := st.CreateProduct(r.Context(), product); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, productToView(*product))
	}
}

// UpdateProduct replaces a product's editable fields.
func UpdateProduct(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var body productRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if body.Price.IsNegative() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative"))
			return
		}

		product := body.toModel(id)
		if err := st.UpdateProduct(r.Context(), product); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, productToView(*product))
	}
}

// DeleteProduct removes a product row outright.
func DeleteProduct(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := st.DeleteProduct(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

type bulkProductsRequest struct {
	Products []productRequest `json:"products" validate:"required,min=1,dive"`
}

// BulkUpsertProducts inserts or replaces a batch of products in one call,
// used by catalog imports.
func BulkUpsertProducts(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body bulkProductsRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products := make([]models.Product, 0, len(body.Products))
		for _, req := range body.Products {
			if req.Price.IsNegative() {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative"))
				return
			}
			products = append(products, *req.toModel(""))
		}

		if err := st.BulkUpsertProducts(r.Context(), products); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]int{"count": len(products)})
	}
}

type featuredRequest struct {
	IsFeatured bool `json:"is_featured"`
}

// SetProductFeatured toggles the home-screen featured flag.
func SetProductFeatured(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var body featuredRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := st.SetProductFeaturedStatus(r.Context(), id, body.IsFeatured); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"id": id, "is_featured": body.IsFeatured})
	}
}
