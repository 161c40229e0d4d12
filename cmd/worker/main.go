// Package main provides the entrypoint for the GridRoute graph worker. It
// consumes graph import notifications from Pub/Sub and recomputes the
// routable extent.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/gridroute/gridroute/internal/database"
	"github.com/gridroute/gridroute/internal/graph"
	"github.com/gridroute/gridroute/internal/worker"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "gridroute-worker"

	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting GridRoute worker")

	// Worker also exposes a health endpoint for Cloud Run
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to database
	dbConfig := database.ConfigFromEnv()
	pool, err := database.Connect(ctx, dbConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	log.Info().
		Str("host", dbConfig.Host).
		Str("database", dbConfig.Database).
		Msg("database connected")

	// Prime the snapshot from the current graph so the first notification
	// has a version to compare against.
	store := graph.NewPostgresNodeStore(pool)
	snapshot := graph.NewSnapshot(graph.Extent{}, "")

	reloadJob := worker.NewReloadJob(worker.ReloadConfig{
		Source:   store,
		Snapshot: snapshot,
		Logger:   log,
	})
	if err := reloadJob.Run(ctx); err != nil {
		log.Error().Err(err).Msg("initial graph reload failed")
	}

	// Subscribe to graph import notifications
	projectID := os.Getenv("PUBSUB_PROJECT_ID")
	subscription := os.Getenv("PUBSUB_SUBSCRIPTION")
	if subscription == "" {
		subscription = "graph-imports"
	}

	handler, err := worker.NewPubSubHandler(ctx, worker.PubSubConfig{
		ProjectID:        projectID,
		SubscriptionName: subscription,
		ReloadJob:        reloadJob,
		Logger:           log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create pubsub handler")
	}
	defer func() {
		if closeErr := handler.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close pubsub client")
		}
	}()

	go func() {
		if err := handler.Start(ctx); err != nil && ctx.Err() == nil {
			log.Fatal().Err(err).Msg("pubsub handler stopped")
		}
	}()

	// Health check endpoint
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"healthy","version":%q,"graph_version":%q}`,
			Version, snapshot.Version())
	})

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("health server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("health server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down worker")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("health server forced to shutdown")
	}

	log.Info().Msg("worker stopped")
}
