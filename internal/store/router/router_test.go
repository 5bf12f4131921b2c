package router

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendalocal/storefront-backend/internal/store"
	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
	"github.com/tiendalocal/storefront-backend/pkg/metrics"
)

// stubStore overrides only the methods a test exercises. Calling anything
// else panics through the embedded nil interface, which is what we want.
type stubStore struct {
	store.Store
	products    func(ctx context.Context) ([]models.Product, error)
	upload      func(ctx context.Context, input store.UploadInput) (string, error)
	calls       int
	uploadCalls int
}

func (s *stubStore) GetProducts(ctx context.Context) ([]models.Product, error) {
	s.calls++
	return s.products(ctx)
}

func (s *stubStore) UploadFile(ctx context.Context, input store.UploadInput) (string, error) {
	s.uploadCalls++
	return s.upload(ctx, input)
}

func backendDown() ([]models.Product, error) {
	return nil, pkgerrors.New(pkgerrors.CodeBackend, "connection refused")
}

func TestRemoteSuccessSkipsLocal(t *testing.T) {
	remote := &stubStore{products: func(context.Context) ([]models.Product, error) {
		return []models.Product{{ID: "p1"}}, nil
	}}
	local := &stubStore{products: func(context.Context) ([]models.Product, error) {
		t.Fatal("local store must not be called")
		return nil, nil
	}}
	r := New(remote, local, nil, nil)

	products, err := r.GetProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, 1, remote.calls)
	assert.Equal(t, 0, local.calls)
}

func TestBackendErrorFallsBackToLocal(t *testing.T) {
	remote := &stubStore{products: func(context.Context) ([]models.Product, error) { return backendDown() }}
	local := &stubStore{products: func(context.Context) ([]models.Product, error) {
		return []models.Product{{ID: "local-p"}}, nil
	}}
	r := New(remote, local, nil, nil)

	products, err := r.GetProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "local-p", products[0].ID)
}

func TestDomainErrorDoesNotFallBack(t *testing.T) {
	remote := &stubStore{products: func(context.Context) ([]models.Product, error) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no such product")
	}}
	local := &stubStore{products: func(context.Context) ([]models.Product, error) {
		t.Fatal("local store must not be called for domain errors")
		return nil, nil
	}}
	r := New(remote, local, nil, nil)

	_, err := r.GetProducts(context.Background())
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
	assert.Equal(t, 0, local.calls)
}

func TestLocalFailureIsTerminal(t *testing.T) {
	remote := &stubStore{products: func(context.Context) ([]models.Product, error) { return backendDown() }}
	local := &stubStore{products: func(context.Context) ([]models.Product, error) {
		return nil, pkgerrors.New(pkgerrors.CodeLocalStore, "disk corrupt")
	}}
	reg := prometheus.NewRegistry()
	m := metrics.NewRouterMetrics(reg)
	r := New(remote, local, nil, m)

	_, err := r.GetProducts(context.Background())
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeLocalStore))

	families, gatherErr := reg.Gather()
	require.NoError(t, gatherErr)
	assert.NotEmpty(t, families)
}

func TestOfflineProbeSkipsRemote(t *testing.T) {
	remote := &stubStore{products: func(context.Context) ([]models.Product, error) {
		t.Fatal("remote store must not be called when the probe reports offline")
		return nil, nil
	}}
	local := &stubStore{products: func(context.Context) ([]models.Product, error) {
		return []models.Product{{ID: "local-p"}}, nil
	}}
	reg := prometheus.NewRegistry()
	m := metrics.NewRouterMetrics(reg)
	r := New(remote, local, nil, m).WithProbe(func(context.Context) bool { return false })

	products, err := r.GetProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "local-p", products[0].ID)
	assert.Equal(t, 0, remote.calls)
	assert.Equal(t, 1, local.calls)

	skips, err := testutil.GatherAndCount(reg, "store_remote_skips_total")
	require.NoError(t, err)
	assert.Equal(t, 1, skips)
}

func TestOnlineProbeUsesRemote(t *testing.T) {
	remote := &stubStore{products: func(context.Context) ([]models.Product, error) {
		return []models.Product{{ID: "remote-p"}}, nil
	}}
	local := &stubStore{products: func(context.Context) ([]models.Product, error) {
		t.Fatal("local store must not be called when the probe reports online")
		return nil, nil
	}}
	r := New(remote, local, nil, nil).WithProbe(func(context.Context) bool { return true })

	products, err := r.GetProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "remote-p", products[0].ID)
}

func TestRouterIsStateless(t *testing.T) {
	failures := 1
	remote := &stubStore{}
	remote.products = func(context.Context) ([]models.Product, error) {
		if remote.calls <= failures {
			return backendDown()
		}
		return []models.Product{{ID: "remote-p"}}, nil
	}
	local := &stubStore{products: func(context.Context) ([]models.Product, error) {
		return []models.Product{{ID: "local-p"}}, nil
	}}
	r := New(remote, local, nil, nil)
	ctx := context.Background()

	products, err := r.GetProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "local-p", products[0].ID)

	// The next call goes back to the remote store; no sticky offline mode.
	products, err = r.GetProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "remote-p", products[0].ID)
	assert.Equal(t, 2, remote.calls)
	assert.Equal(t, 1, local.calls)
}

func TestUploadFallsThroughToOfflineError(t *testing.T) {
	remote := &stubStore{upload: func(context.Context, store.UploadInput) (string, error) {
		return "", pkgerrors.New(pkgerrors.CodeBackend, "connection refused")
	}}
	local := &stubStore{upload: func(context.Context, store.UploadInput) (string, error) {
		return "", pkgerrors.New(pkgerrors.CodeOfflineUnavailable, "file upload requires a connection")
	}}
	r := New(remote, local, nil, nil)

	_, err := r.UploadFile(context.Background(), store.UploadInput{ObjectName: "x", Data: []byte("d")})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeOfflineUnavailable))
}

func TestFallbackCountersIncrement(t *testing.T) {
	remote := &stubStore{products: func(context.Context) ([]models.Product, error) { return backendDown() }}
	local := &stubStore{products: func(context.Context) ([]models.Product, error) {
		return []models.Product{}, nil
	}}
	reg := prometheus.NewRegistry()
	m := metrics.NewRouterMetrics(reg)
	r := New(remote, local, nil, m)

	_, err := r.GetProducts(context.Background())
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(reg,
		"store_remote_failures_total",
		"store_fallbacks_total",
	)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
