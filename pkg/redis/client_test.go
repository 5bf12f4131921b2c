package redis

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tiendalocal/storefront-backend/pkg/config"
)

func TestSessionValueLifecycle(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	client := &Client{store: mock}

	key := client.AccessSessionKey("jti-1")
	if err := client.Set(ctx, key, "refresh-token", 10*time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	value, err := client.Get(ctx, key)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if value != "refresh-token" {
		t.Fatalf("expected stored value, got %q", value)
	}

	if err := client.Del(ctx, key); err != nil {
		t.Fatalf("del failed: %v", err)
	}
	if _, err := client.Get(ctx, key); err == nil || err != redis.Nil {
		t.Fatalf("expected redis.Nil after delete, got %v", err)
	}
}

func TestSetNXOnlySetsOnce(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	client := &Client{store: mock}

	key := client.IdempotencyKey("order-events", "evt-1")
	first, err := client.SetNX(ctx, key, "1", time.Minute)
	if err != nil {
		t.Fatalf("setnx failed: %v", err)
	}
	if !first {
		t.Fatalf("expected first SetNX to succeed")
	}
	second, err := client.SetNX(ctx, key, "1", time.Minute)
	if err != nil {
		t.Fatalf("setnx failed: %v", err)
	}
	if second {
		t.Fatalf("expected second SetNX to be rejected")
	}
}

func TestIncrWithTTLSetsExpiryOnFirstIncrement(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	client := &Client{store: mock}

	key := client.RateLimitKey("login:10.0.0.1")
	count, err := client.IncrWithTTL(ctx, key, time.Minute)
	if err != nil {
		t.Fatalf("incr failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected count 1, got %d", count)
	}
	if mock.expirations[key] != time.Minute {
		t.Fatalf("expected TTL set on first increment, got %v", mock.expirations[key])
	}

	count, err = client.IncrWithTTL(ctx, key, time.Minute)
	if err != nil {
		t.Fatalf("incr failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected count 2, got %d", count)
	}
}

func TestKeyBuilders(t *testing.T) {
	client := &Client{}
	if got := client.AccessSessionKey("jti"); got != "tienda:session:access:jti" {
		t.Fatalf("unexpected session key %s", got)
	}
	if got := client.IdempotencyKey("order-events", "evt"); got != "tienda:idempotency:order-events:evt" {
		t.Fatalf("unexpected idempotency key %s", got)
	}
}

func TestOptionsFromConfigRequiresTarget(t *testing.T) {
	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatalf("expected error without url or host")
	}
	opts, err := optionsFromConfig(config.RedisConfig{Host: "localhost", Port: 6379})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "localhost:6379" {
		t.Fatalf("unexpected addr %s", opts.Addr)
	}
}

type mockCmdable struct {
	data        map[string]string
	expirations map[string]time.Duration
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{
		data:        make(map[string]string),
		expirations: make(map[string]time.Duration),
	}
}

func (m *mockCmdable) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (m *mockCmdable) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	m.data[key] = fmt.Sprint(value)
	return redis.NewStatusResult("OK", nil)
}

func (m *mockCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *mockCmdable) SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd {
	if _, exists := m.data[key]; exists {
		return redis.NewBoolResult(false, nil)
	}
	m.data[key] = fmt.Sprint(value)
	return redis.NewBoolResult(true, nil)
}

func (m *mockCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(m.data, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func (m *mockCmdable) Incr(ctx context.Context, key string) *redis.IntCmd {
	n, err := strconv.ParseInt(m.data[key], 10, 64)
	if m.data[key] != "" && err != nil {
		return redis.NewIntResult(0, err)
	}
	n++
	m.data[key] = strconv.FormatInt(n, 10)
	return redis.NewIntResult(n, nil)
}

func (m *mockCmdable) Expire(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd {
	m.expirations[key] = ttl
	return redis.NewBoolResult(true, nil)
}
