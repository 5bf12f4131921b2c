// Package local implements the embedded fallback store. The entire SQLite
// database is persisted as one blob after every mutation and restored from
// that blob on startup, so the store survives restarts without a server.
package local

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/multierr"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tiendalocal/storefront-backend/internal/store"
	"github.com/tiendalocal/storefront-backend/pkg/blob"
	"github.com/tiendalocal/storefront-backend/pkg/config"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
	"github.com/tiendalocal/storefront-backend/pkg/logger"
)

const dbFileName = "storefront.db"

// Store is the embedded SQLite implementation of store.Store.
//
// Every mutation re-serializes the whole database and writes it to the
// blob store before returning. The cost is O(database size) per write,
// which is acceptable for a small catalog and buys crash durability
// without a WAL. Concurrent mutations are not mutually excluded; the last
// snapshot written wins, which leaves a narrow lost-update window that is
// a documented limitation of this design.
type Store struct {
	db       *gorm.DB
	blobs    blob.Store
	blobKey  string
	workPath string
	latency  time.Duration
	log      *logger.Logger
}

var _ store.Store = (*Store)(nil)

// Open restores the persisted snapshot if one exists, opens the working
// database, runs the migration sequence, and seeds a fresh database.
func Open(ctx context.Context, cfg config.LocalStoreConfig, blobs blob.Store, logg *logger.Logger) (*Store, error) {
	if blobs == nil {
		return nil, errors.New("blob store is required")
	}

	workDir := cfg.WorkDir
	if workDir == "" {
		workDir = os.TempDir()
	}
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating work dir: %w", err)
	}
	workPath := filepath.Join(workDir, dbFileName)

	fresh, err := restoreSnapshot(ctx, blobs, cfg.BlobKey, workPath)
	if err != nil {
		return nil, err
	}

	conn, err := gorm.Open(sqlite.Open(workPath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening local db: %w", err)
	}

	s := &Store{
		db:       conn,
		blobs:    blobs,
		blobKey:  cfg.BlobKey,
		workPath: workPath,
		latency:  cfg.SimulatedLatency,
		log:      logg,
	}

	if err := s.migrate(ctx, fresh); err != nil {
		return nil, err
	}
	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	if logg != nil {
		logg.Info(logg.WithFields(ctx, map[string]any{"fresh": fresh, "path": workPath}), "local store ready")
	}
	return s, nil
}

// Close flushes a final snapshot and closes the SQLite handle.
func (s *Store) Close() error {
	errs := s.persist(context.Background())
	sqlDB, err := s.db.DB()
	if err != nil {
		return multierr.Append(errs, err)
	}
	return multierr.Append(errs, sqlDB.Close())
}

// pause injects the artificial async boundary every operation carries so
// callers see the same loading behavior as the network-bound remote path.
func (s *Store) pause(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// read wraps a read-only operation with the latency boundary.
func (s *Store) read(ctx context.Context, fn func(db *gorm.DB) error) error {
	if err := s.pause(ctx); err != nil {
		return err
	}
	return fn(s.db.WithContext(ctx))
}

// mutate wraps a mutation: latency, the operation itself, then a full
// snapshot persist as the last step.
func (s *Store) mutate(ctx context.Context, fn func(db *gorm.DB) error) error {
	if err := s.pause(ctx); err != nil {
		return err
	}
	if err := fn(s.db.WithContext(ctx)); err != nil {
		return err
	}
	return s.persist(ctx)
}

func localErr(err error, msg string) error {
	return pkgerrors.Wrap(pkgerrors.CodeLocalStore, err, msg)
}

// warn records a degraded read. List reads on the local path never fail
// hard; they log and return empty results instead.
func (s *Store) warn(ctx context.Context, operation string, err error) {
	if s.log == nil {
		return
	}
	ctx = s.log.WithFields(ctx, map[string]any{"operation": operation, "error": err.Error()})
	s.log.Warn(ctx, "local read degraded")
}
