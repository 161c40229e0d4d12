// Package worker reloads the graph extent when a new graph import lands.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/gridroute/gridroute/internal/graph"
)

// NodeSource yields the node coordinates of the current graph.
type NodeSource interface {
	// CurrentVersion returns the most recently imported graph version.
	CurrentVersion(ctx context.Context) (string, error)
	// LoadNodes reads all node coordinates of the given version.
	LoadNodes(ctx context.Context, version string) (*graph.MemoryNodeStore, error)
}

// ReloadConfig holds configuration for the reload job.
type ReloadConfig struct {
	// Source supplies graph nodes, typically the Postgres node store.
	Source NodeSource

	// Snapshot receives the freshly computed extent.
	Snapshot *graph.Snapshot

	// MaxRetries bounds retry attempts per reload. Default: 5.
	MaxRetries uint64

	// InitialInterval is the first retry delay. Default: 1 second.
	InitialInterval time.Duration

	// Logger for job operations.
	Logger zerolog.Logger
}

// ReloadJob recomputes the graph extent from the node source and swaps it
// into the snapshot.
type ReloadJob struct {
	source          NodeSource
	snapshot        *graph.Snapshot
	maxRetries      uint64
	initialInterval time.Duration
	logger          zerolog.Logger
}

// NewReloadJob creates a reload job.
func NewReloadJob(cfg ReloadConfig) *ReloadJob {
	maxRetries := cfg.MaxRetries
	if maxRetries == 0 {
		maxRetries = 5
	}
	initialInterval := cfg.InitialInterval
	if initialInterval == 0 {
		initialInterval = time.Second
	}
	return &ReloadJob{
		source:          cfg.Source,
		snapshot:        cfg.Snapshot,
		maxRetries:      maxRetries,
		initialInterval: initialInterval,
		logger:          cfg.Logger,
	}
}

// Run reloads the extent, retrying transient source failures with
// exponential backoff. The snapshot keeps serving the old extent until the
// new one is fully computed.
func (j *ReloadJob) Run(ctx context.Context) error {
	start := time.Now()

	operation := func() error {
		version, err := j.source.CurrentVersion(ctx)
		if err != nil {
			return fmt.Errorf("resolve graph version: %w", err)
		}

		if version == j.snapshot.Version() {
			j.logger.Debug().
				Str("version", version).
				Msg("graph version unchanged, skipping reload")
			return nil
		}

		nodes, err := j.source.LoadNodes(ctx, version)
		if err != nil {
			return fmt.Errorf("load nodes for version %s: %w", version, err)
		}

		extent, err := graph.ExtentFromNodes(nodes)
		if err != nil {
			// An empty import will not fix itself on retry.
			return backoff.Permanent(fmt.Errorf("compute extent for version %s: %w", version, err))
		}

		j.snapshot.Swap(extent, version)

		j.logger.Info().
			Str("version", version).
			Int("node_count", nodes.NodeCount()).
			Str("extent", extent.String()).
			Dur("duration", time.Since(start)).
			Msg("graph extent reloaded")
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = j.initialInterval
	bo.MaxElapsedTime = 0

	return backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(bo, j.maxRetries), ctx))
}
