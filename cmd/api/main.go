// Package main provides the entrypoint for the GridRoute API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/gridroute/gridroute/internal/api"
	"github.com/gridroute/gridroute/internal/api/middleware"
	"github.com/gridroute/gridroute/internal/database"
	"github.com/gridroute/gridroute/internal/engine"
	"github.com/gridroute/gridroute/internal/engine/remote"
	"github.com/gridroute/gridroute/internal/graph"
	"github.com/gridroute/gridroute/internal/telemetry"
	"github.com/gridroute/gridroute/internal/worker"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "gridroute-api"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting GridRoute API")

	// Get configuration from environment
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	telemetryEnabled := os.Getenv("OTEL_ENABLED") == "true"

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		OTLPEndpoint:   otlpEndpoint,
		Enabled:        telemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if telemetryEnabled {
		log.Info().
			Str("otlp_endpoint", otlpEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Connect to database
	dbConfig := database.ConfigFromEnv()
	pool, err := database.Connect(ctx, dbConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	log.Info().
		Str("host", dbConfig.Host).
		Int("port", dbConfig.Port).
		Str("database", dbConfig.Database).
		Msg("database connected")

	// Load the current graph and compute its extent. The server cannot
	// validate requests without one, so failure here is fatal.
	store := graph.NewPostgresNodeStore(pool)
	version, err := store.CurrentVersion(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to resolve graph version")
	}
	nodes, err := store.LoadNodes(ctx, version)
	if err != nil {
		log.Fatal().Err(err).Str("graph_version", version).Msg("failed to load graph nodes")
	}
	extent, err := graph.ExtentFromNodes(nodes)
	if err != nil {
		log.Fatal().Err(err).Str("graph_version", version).Msg("failed to compute graph extent")
	}
	snapshot := graph.NewSnapshot(extent, version)
	log.Info().
		Str("graph_version", version).
		Int("node_count", nodes.NodeCount()).
		Str("extent", extent.String()).
		Msg("graph extent loaded")

	// Periodically pick up new graph imports. The worker process reloads
	// on Pub/Sub notifications; the API polls as a fallback.
	reloadInterval := 5 * time.Minute
	if raw := os.Getenv("GRAPH_RELOAD_INTERVAL"); raw != "" {
		if parsed, parseErr := time.ParseDuration(raw); parseErr == nil {
			reloadInterval = parsed
		}
	}
	reloadJob := worker.NewReloadJob(worker.ReloadConfig{
		Source:   store,
		Snapshot: snapshot,
		Logger:   log,
	})
	reloadCtx, stopReload := context.WithCancel(ctx)
	defer stopReload()
	go func() {
		ticker := time.NewTicker(reloadInterval)
		defer ticker.Stop()
		for {
			select {
			case <-reloadCtx.Done():
				return
			case <-ticker.C:
				if reloadErr := reloadJob.Run(reloadCtx); reloadErr != nil {
					log.Error().Err(reloadErr).Msg("periodic graph reload failed")
				}
			}
		}
	}()

	// Initialize the remote engine provider
	engineURL := os.Getenv("ENGINE_URL")
	if engineURL == "" {
		engineURL = "http://localhost:8989"
	}
	provider := remote.New(remote.Config{
		BaseURL: engineURL,
		APIKey:  os.Getenv("ENGINE_API_KEY"),
		Logger:  log,
	})
	log.Info().Str("engine_url", engineURL).Msg("remote engine provider initialized")

	engineService := engine.NewService(engine.ServiceConfig{
		Provider: provider,
		Snapshot: snapshot,
		Logger:   log,
	})

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		log.Warn().Msg("JWT_SIGNING_KEY not set - route endpoints are unauthenticated")
	}

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:       Version,
		BuildTime:     BuildTime,
		Logger:        log,
		Metrics:       metrics,
		EngineService: engineService,
		Snapshot:      snapshot,
		JWTSigningKey: jwtSigningKey,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
