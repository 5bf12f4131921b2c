package controllers

import (
	"context"
	"net/http"

	"github.com/tiendalocal/storefront-backend/api/responses"
	"github.com/tiendalocal/storefront-backend/pkg/config"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
	"github.com/tiendalocal/storefront-backend/pkg/logger"
)

// Pinger is any dependency that can report connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Tienda-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady probes the named dependencies. The storefront stays usable
// offline, so a failing probe is reported but does not fail readiness for
// the local-capable paths; only a total outage returns an error.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Tienda-Env", cfg.App.Env)

		status := map[string]string{}
		healthy := 0
		for name, dep := range deps {
			if dep == nil {
				status[name] = "not_configured"
				continue
			}
			if err := dep.Ping(r.Context()); err != nil {
				status[name] = "down"
				if logg != nil {
					logg.Error(r.Context(), "health probe failed: "+name, err)
				}
				continue
			}
			status[name] = "up"
			healthy++
		}

		if len(deps) > 0 && healthy == 0 {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeDependency, "no backing dependency reachable").WithDetails(status))
			return
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "dependencies": status})
	}
}
