package local

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/tiendalocal/storefront-backend/pkg/blob"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
)

// restoreSnapshot writes the persisted blob to workPath. It reports true
// when no snapshot exists yet, meaning the schema must be seeded fresh.
func restoreSnapshot(ctx context.Context, blobs blob.Store, key, workPath string) (fresh bool, err error) {
	data, err := blobs.Get(ctx, key)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			// Leftover working file from a previous run without a snapshot
			// would resurrect stale data.
			if rmErr := os.Remove(workPath); rmErr != nil && !os.IsNotExist(rmErr) {
				return false, fmt.Errorf("clearing stale working db: %w", rmErr)
			}
			return true, nil
		}
		return false, pkgerrors.Wrap(pkgerrors.CodeLocalStore, err, "loading local snapshot")
	}
	if err := os.WriteFile(workPath, data, 0o644); err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeLocalStore, err, "restoring local snapshot")
	}
	return false, nil
}

// persist serializes the whole database and replaces the stored blob.
// VACUUM INTO produces a consistent copy without closing the connection.
func (s *Store) persist(ctx context.Context) error {
	tmpPath := s.workPath + ".snapshot"
	if err := os.Remove(tmpPath); err != nil && !os.IsNotExist(err) {
		return localErr(err, "clearing previous snapshot file")
	}

	if err := s.db.WithContext(ctx).Exec("VACUUM INTO ?", tmpPath).Error; err != nil {
		return localErr(err, "serializing local database")
	}
	defer os.Remove(tmpPath)

	data, err := os.ReadFile(tmpPath)
	if err != nil {
		return localErr(err, "reading serialized database")
	}
	if err := s.blobs.Put(ctx, s.blobKey, data); err != nil {
		return localErr(err, "persisting local snapshot")
	}
	return nil
}
