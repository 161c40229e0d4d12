// Package api provides the HTTP API for GridRoute.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/gridroute/gridroute/internal/api/handler"
	"github.com/gridroute/gridroute/internal/api/middleware"
	"github.com/gridroute/gridroute/internal/engine"
	"github.com/gridroute/gridroute/internal/graph"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version       string
	BuildTime     string
	Logger        zerolog.Logger
	Metrics       *middleware.Metrics
	EngineService *engine.Service
	Snapshot      *graph.Snapshot

	// JWTSigningKey enables bearer auth on the compute endpoint when set.
	JWTSigningKey string
}

// NewRouter creates a chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware - order matters
	r.Use(middleware.RequestID)
	r.Use(middleware.Tracing())
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
	}
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.ContentTypeJSON)

	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.Snapshot)
	routeHandler := handler.NewRouteHandler(cfg.EngineService)

	auth := middleware.BearerAuth(cfg.JWTSigningKey)
	computeRateLimit := middleware.RateLimitByIP(middleware.ComputeRateLimit)
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
			r.With(standardRateLimit).Get("/graph", opsHandler.GraphStatus)
		})

		// Route computation fans out to the engine, so it gets auth and
		// the strict limit.
		r.With(auth, computeRateLimit).Post("/routes:compute", routeHandler.ComputeRoute)
	})

	return r
}
