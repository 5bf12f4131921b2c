// Package router composes the remote and local stores behind the uniform
// store.Store surface. Each call first consults an optional connectivity
// probe; when the probe reports the backend unreachable the call is served
// straight from the embedded local store. Otherwise the call goes to the
// remote store, and when it fails with a backend or dependency error the
// same call is retried once against the local store. Errors from the local
// store are terminal. The router keeps no state between calls, so a
// recovered backend is used again on the very next operation.
package router

import (
	"context"
	"time"

	"github.com/tiendalocal/storefront-backend/internal/store"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
	"github.com/tiendalocal/storefront-backend/pkg/logger"
	"github.com/tiendalocal/storefront-backend/pkg/metrics"
)

const (
	backendRemote = "remote"
	backendLocal  = "local"
)

// Router is the fallback-composing store.Store implementation.
type Router struct {
	remote  store.Store
	local   store.Store
	probe   func(context.Context) bool
	log     *logger.Logger
	metrics *metrics.RouterMetrics
}

var _ store.Store = (*Router)(nil)

// New wires the router. metrics may be nil.
func New(remote, local store.Store, logg *logger.Logger, m *metrics.RouterMetrics) *Router {
	return &Router{remote: remote, local: local, log: logg, metrics: m}
}

// WithProbe installs a connectivity check consulted before every remote
// attempt. When the probe reports false the remote call is skipped and the
// operation is served from the local store. The probe must be cheap; it
// runs once per operation.
func (r *Router) WithProbe(probe func(context.Context) bool) *Router {
	r.probe = probe
	return r
}

// shouldFallBack reports whether a remote failure is an infrastructure
// problem worth retrying locally. Domain errors (not found, validation,
// conflicts, credential failures) are real answers and pass through.
func shouldFallBack(err error) bool {
	if err == nil {
		return false
	}
	typed := pkgerrors.As(err)
	if typed == nil {
		// Unclassified errors are driver or context failures.
		return true
	}
	switch typed.Code() {
	case pkgerrors.CodeBackend, pkgerrors.CodeDependency:
		return true
	}
	return false
}

func (r *Router) warnFallback(ctx context.Context, operation string, err error) {
	if r.log == nil {
		return
	}
	ctx = r.log.WithFields(ctx, map[string]any{
		"operation": operation,
		"error":     err.Error(),
	})
	r.log.Warn(ctx, "remote store failed, serving from local store")
}

// query runs a value-returning operation with fallback.
func query[T any](ctx context.Context, r *Router, operation string, fn func(s store.Store) (T, error)) (T, error) {
	if r.probe != nil && !r.probe(ctx) {
		r.metrics.IncRemoteSkip(operation)
		return runLocal(r, operation, fn)
	}

	start := time.Now()
	out, err := fn(r.remote)
	r.metrics.ObserveDuration(operation, backendRemote, time.Since(start))
	if err == nil {
		return out, nil
	}
	if !shouldFallBack(err) {
		return out, err
	}
	r.metrics.IncRemoteFailure(operation)
	r.warnFallback(ctx, operation, err)
	r.metrics.IncFallback(operation)

	return runLocal(r, operation, fn)
}

func runLocal[T any](r *Router, operation string, fn func(s store.Store) (T, error)) (T, error) {
	start := time.Now()
	out, err := fn(r.local)
	r.metrics.ObserveDuration(operation, backendLocal, time.Since(start))
	if err != nil {
		r.metrics.IncLocalFailure(operation)
	}
	return out, err
}

// exec runs an error-only operation with fallback.
func exec(ctx context.Context, r *Router, operation string, fn func(s store.Store) error) error {
	_, err := query(ctx, r, operation, func(s store.Store) (struct{}, error) {
		return struct{}{}, fn(s)
	})
	return err
}
