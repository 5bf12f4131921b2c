package remote

import (
	"context"

	"github.com/tiendalocal/storefront-backend/internal/store"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
)

const defaultUploadBucket = "company-assets"

// UploadFile pushes the asset to object storage and returns its public URL.
func (s *Store) UploadFile(ctx context.Context, input store.UploadInput) (string, error) {
	if s.uploads == nil {
		return "", pkgerrors.New(pkgerrors.CodeDependency, "object storage is not configured")
	}
	if len(input.Data) == 0 {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "file is empty")
	}
	if input.ObjectName == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "object name is required")
	}
	bucket := input.Bucket
	if bucket == "" {
		bucket = defaultUploadBucket
	}
	url, err := s.uploads.Upload(ctx, bucket, input.ObjectName, input.ContentType, input.Data)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeBackend, err, "uploading file")
	}
	return url, nil
}
