package notify

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// idempotencyStore is the Redis surface the guard needs.
type idempotencyStore interface {
	SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
	Del(ctx context.Context, keys ...string) error
	IdempotencyKey(scope, id string) string
}

// Idempotency tracks processed event IDs per consumer using Redis SETNX
// with a TTL. The database unique index on event_id is the second guard
// for events that outlive the TTL.
type Idempotency struct {
	store idempotencyStore
	ttl   time.Duration
}

func NewIdempotency(store idempotencyStore, ttl time.Duration) (*Idempotency, error) {
	if store == nil {
		return nil, errors.New("idempotency store is required")
	}
	if ttl < 0 {
		return nil, errors.New("ttl must be non-negative")
	}
	return &Idempotency{store: store, ttl: ttl}, nil
}

// CheckAndMark returns true when the event was already processed and
// otherwise marks it processed for the configured TTL.
func (m *Idempotency) CheckAndMark(ctx context.Context, consumer, eventID string) (bool, error) {
	key, err := m.key(consumer, eventID)
	if err != nil {
		return false, err
	}
	set, err := m.store.SetNX(ctx, key, "1", m.ttl)
	if err != nil {
		return false, err
	}
	return !set, nil
}

// Unmark releases the processed marker so a failed handler can retry.
func (m *Idempotency) Unmark(ctx context.Context, consumer, eventID string) error {
	key, err := m.key(consumer, eventID)
	if err != nil {
		return err
	}
	return m.store.Del(ctx, key)
}

func (m *Idempotency) key(consumer, eventID string) (string, error) {
	if consumer == "" {
		return "", errors.New("consumer name is required")
	}
	if eventID == "" {
		return "", errors.New("event id is required")
	}
	return m.store.IdempotencyKey(fmt.Sprintf("evt:processed:%s", consumer), eventID), nil
}
