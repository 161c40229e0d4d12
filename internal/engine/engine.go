// Package engine fronts the path computation engine. Every request is
// validated against the loaded graph's extent before it is handed to a
// Provider; invalid requests never reach the engine.
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/gridroute/gridroute/internal/route"
)

// Sentinel errors for engine operations.
var (
	// ErrProviderUnavailable indicates the engine is down or its circuit breaker is open.
	ErrProviderUnavailable = errors.New("routing engine unavailable")
	// ErrNoRouteFound indicates no path exists between the given points.
	ErrNoRouteFound = errors.New("no route found between the given points")
)

// Provider computes paths for requests that passed validation.
type Provider interface {
	// Route computes a path through the request's waypoints.
	Route(ctx context.Context, req *route.Request) (*Path, error)
	// Name returns the provider identifier for logging and metrics.
	Name() string
}

// Path is a single computed route.
type Path struct {
	DistanceMeters  float64
	DurationSeconds float64
	Points          []route.Waypoint // decoded route geometry
	Polyline        string           // encoded geometry (precision 5)
}

// Response is the outcome of a routing call. Validation failures are carried
// in the response, never returned as an error; a response either has errors
// or at least one path, never both.
type Response struct {
	Paths       []Path
	Provider    string
	GeneratedAt time.Time

	result route.Result
}

// HasErrors reports whether the request was rejected by validation.
func (r *Response) HasErrors() bool {
	return r.result.HasErrors()
}

// Errors returns the validation errors in check execution order.
func (r *Response) Errors() []route.ValidationError {
	return r.result.Errors()
}
