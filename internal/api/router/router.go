package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/pratik-mahalle/calendrical/docs"
	"github.com/pratik-mahalle/calendrical/internal/api/handlers"
	"github.com/pratik-mahalle/calendrical/internal/api/middleware"
	"github.com/pratik-mahalle/calendrical/internal/config"
	"github.com/pratik-mahalle/calendrical/internal/pkg/errors"
	"github.com/pratik-mahalle/calendrical/internal/pkg/logger"
	"github.com/pratik-mahalle/calendrical/internal/pkg/metrics"
	"github.com/pratik-mahalle/calendrical/internal/pkg/utils"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Calendar *handlers.CalendarHandler
	Zone     *handlers.ZoneHandler
}

// New builds the HTTP handler. ctx bounds the background work of the
// middleware stack.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger, h *Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(metrics.Middleware)
	r.Use(middleware.SecurityHeaders(cfg.Server.Environment == "production"))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, errors.NotFound("Route"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteStatus(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Handle("/metrics", metrics.Handler())

	r.Get("/health", h.Health.Healthz)
	r.Get("/healthz", h.Health.Healthz)
	r.Get("/readyz", h.Health.Readyz)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/zones", func(r chi.Router) {
			r.Get("/", h.Zone.List)
			r.Get("/system", h.Zone.System)
		})
		r.Get("/offset", h.Zone.Offset)

		r.Route("/convert", func(r chi.Router) {
			r.Post("/local", h.Calendar.LocalToInstant)
			r.Post("/instant", h.Calendar.InstantToLocal)
		})

		r.Route("/arithmetic", func(r chi.Router) {
			r.Post("/plus", h.Calendar.Plus)
			r.Post("/until", h.Calendar.Until)
			r.Post("/period", h.Calendar.Period)
		})

		r.Route("/dates", func(r chi.Router) {
			r.Post("/plus", h.Calendar.DatePlus)
			r.Post("/period", h.Calendar.DatePeriod)
		})
	})

	return r
}
