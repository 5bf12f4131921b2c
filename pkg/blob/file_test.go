package blob

import (
	"context"
	"errors"
	"testing"
)

func TestFileStorePutGetRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	if err := store.Put(ctx, "snapshot", []byte("v1")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := store.Get(ctx, "snapshot")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "v1" {
		t.Fatalf("got %q, want v1", got)
	}

	// Put replaces the previous payload in full.
	if err := store.Put(ctx, "snapshot", []byte("second version")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err = store.Get(ctx, "snapshot")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "second version" {
		t.Fatalf("got %q, want second version", got)
	}
}

func TestFileStoreGetMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	_, err = store.Get(context.Background(), "absent")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFileStoreDeleteIsIdempotent(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()
	if err := store.Put(ctx, "k", []byte("x")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete again: %v", err)
	}
	if _, err := store.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
