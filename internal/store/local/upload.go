package local

import (
	"context"

	"github.com/tiendalocal/storefront-backend/internal/store"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
)

// UploadFile always fails on the local path. Object storage has no offline
// substitute, so the caller gets a retryable offline error instead of a
// URL that would never resolve.
func (s *Store) UploadFile(ctx context.Context, input store.UploadInput) (string, error) {
	if err := s.pause(ctx); err != nil {
		return "", err
	}
	return "", pkgerrors.New(pkgerrors.CodeOfflineUnavailable, "file upload requires a connection")
}
