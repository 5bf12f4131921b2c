// Package blob persists opaque byte payloads under string keys. The local
// store uses it to keep whole-database snapshots between runs.
package blob

import "context"

// Store is the persistence surface for snapshot blobs.
type Store interface {
	// Put atomically replaces the payload stored under key.
	Put(ctx context.Context, key string, data []byte) error
	// Get returns the payload stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Delete removes the payload stored under key. Deleting a missing key
	// is not an error.
	Delete(ctx context.Context, key string) error
}
