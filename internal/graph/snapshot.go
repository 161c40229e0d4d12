package graph

import (
	"sync"
	"time"
)

// Snapshot holds the extent of the currently loaded graph. The API reads it
// on every request; the reload worker swaps in a new extent when a fresh
// graph import lands. Readers never see a partially updated extent.
type Snapshot struct {
	mu       sync.RWMutex
	extent   Extent
	version  string
	loadedAt time.Time
}

// NewSnapshot creates a snapshot for the given extent and graph version.
func NewSnapshot(extent Extent, version string) *Snapshot {
	return &Snapshot{
		extent:   extent,
		version:  version,
		loadedAt: time.Now(),
	}
}

// Extent returns the extent of the currently loaded graph.
func (s *Snapshot) Extent() Extent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.extent
}

// Version returns the version identifier of the currently loaded graph.
func (s *Snapshot) Version() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// LoadedAt returns when the current graph was loaded.
func (s *Snapshot) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Swap replaces the snapshot contents with a freshly computed extent.
func (s *Snapshot) Swap(extent Extent, version string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.extent = extent
	s.version = version
	s.loadedAt = time.Now()
}
