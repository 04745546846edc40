// Package httptransport assembles the gateway's HTTP surface: the public
// login and health endpoints, and the token-gated dashboard routes.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	dashboardHandler "givegate/internal/dashboard/handler"
	lifecycleHandler "givegate/internal/lifecycle/handler"
	"givegate/internal/platform/metrics"
	"givegate/internal/platform/middleware"
	sessionHandler "givegate/internal/session/handler"
	"givegate/pkg/platform/httputil"
)

// Deps carries everything the router mounts.
type Deps struct {
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
	Validator middleware.TokenValidator
	Sessions  *sessionHandler.Handler
	Cases     *lifecycleHandler.Handler
	Dashboard *dashboardHandler.Handler
	// Checks are named readiness probes, e.g. the redis ping. Nil values are
	// skipped so optional backends don't fail health when absent.
	Checks map[string]func(ctx context.Context) error
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Latency(d.Metrics))

	r.Get("/healthz", d.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	d.Sessions.RegisterPublic(r)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(d.Validator, d.Logger))
		d.Sessions.RegisterProtected(r)
		d.Cases.Register(r)
		d.Dashboard.Register(r)
	})

	return r
}

func (d Deps) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := make(map[string]string, len(d.Checks))
	for name, check := range d.Checks {
		if check == nil {
			continue
		}
		if err := check(ctx); err != nil {
			status = http.StatusServiceUnavailable
			checks[name] = err.Error()
			continue
		}
		checks[name] = "ok"
	}

	httputil.WriteJSON(w, status, map[string]any{
		"status": http.StatusText(status),
		"checks": checks,
	})
}
