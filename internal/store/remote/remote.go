// Package remote implements store.Store against the hosted Postgres
// backend. It is the primary store; the router falls back to the embedded
// local store when an operation here fails with a backend error.
package remote

import (
	"context"
	"errors"

	pubsub "cloud.google.com/go/pubsub/v2"
	"gorm.io/gorm"

	"github.com/tiendalocal/storefront-backend/internal/store"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
	"github.com/tiendalocal/storefront-backend/pkg/logger"
)

// Uploader pushes binary assets to object storage. The GCS client is the
// production implementation.
type Uploader interface {
	Upload(ctx context.Context, bucket, objectName, contentType string, data []byte) (string, error)
}

// OrderEventPublisher is the Pub/Sub publisher surface used for order
// status events. *pubsub.Publisher satisfies it.
type OrderEventPublisher interface {
	Publish(ctx context.Context, msg *pubsub.Message) *pubsub.PublishResult
}

// Store is the Postgres-backed implementation of store.Store.
type Store struct {
	db      *gorm.DB
	uploads Uploader
	events  OrderEventPublisher
	log     *logger.Logger
}

var _ store.Store = (*Store)(nil)

// New wires the remote store. uploads and events may be nil; the affected
// operations then fail with a dependency error or skip publishing.
func New(conn *gorm.DB, uploads Uploader, events OrderEventPublisher, logg *logger.Logger) *Store {
	return &Store{db: conn, uploads: uploads, events: events, log: logg}
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// backendErr classifies a failed backend call. Unique violations surface
// as conflicts so callers never retry them against the local store.
func backendErr(err error, msg string) error {
	if pkgerrors.IsUniqueViolation(err) {
		return pkgerrors.Wrap(pkgerrors.CodeAlreadyExists, err, "record already exists")
	}
	return pkgerrors.Wrap(pkgerrors.CodeBackend, err, msg)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
