package controllers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/tiendalocal/storefront-backend/api/responses"
	"github.com/tiendalocal/storefront-backend/internal/store"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
	"github.com/tiendalocal/storefront-backend/pkg/logger"
)

const maxUploadBytes = 10 << 20 // 10 MiB

// UploadFile accepts a multipart file and stores it in object storage.
// This is the one operation without a local fallback, so offline callers
// get a retryable service-unavailable response.
func UploadFile(st store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart request"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "file field is required"))
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "read upload"))
			return
		}

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = http.DetectContentType(data)
		}

		objectName := uploadObjectName(header.Filename)

		url, err := st.UploadFile(r.Context(), store.UploadInput{
			Bucket:      r.FormValue("bucket"),
			ObjectName:  objectName,
			ContentType: contentType,
			Data:        data,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{
			"url":         url,
			"object_name": objectName,
		})
	}
}

// uploadObjectName builds a collision-free object key that keeps the
// original extension for content-type sniffing downstream.
func uploadObjectName(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return "uploads/" + uuid.NewString() + ext
}
