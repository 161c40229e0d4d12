package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gridroute/gridroute/internal/graph"
	"github.com/gridroute/gridroute/internal/route"
)

// ServiceConfig holds configuration for the engine service.
type ServiceConfig struct {
	// Provider computes paths for validated requests.
	Provider Provider

	// Snapshot supplies the extent of the currently loaded graph.
	Snapshot *graph.Snapshot

	// Validator checks requests before they reach the provider.
	// Defaults to a validator with route.DefaultPolicy.
	Validator *route.Validator

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service is the gate between inbound requests and the routing engine.
type Service struct {
	provider  Provider
	snapshot  *graph.Snapshot
	validator *route.Validator
	logger    zerolog.Logger
}

// NewService creates a new engine service.
func NewService(cfg ServiceConfig) *Service {
	validator := cfg.Validator
	if validator == nil {
		validator = route.NewValidator(route.DefaultPolicy())
	}
	return &Service{
		provider:  cfg.Provider,
		snapshot:  cfg.Snapshot,
		validator: validator,
		logger:    cfg.Logger,
	}
}

// Route validates the request against the current graph extent and, when it
// is valid, delegates to the provider.
//
// A rejected request yields a Response carrying the ordered validation
// errors and a nil error: bad input is an expected outcome, not a failure of
// the service. Provider failures are returned as errors.
func (s *Service) Route(ctx context.Context, req *route.Request) (*Response, error) {
	result := s.validator.Validate(req, s.snapshot.Extent())
	if result.HasErrors() {
		s.logger.Debug().
			Int("point_count", len(req.Points)).
			Int("error_count", len(result.Errors())).
			Str("first_error", result.Errors()[0].Message).
			Msg("request rejected by validator")
		return &Response{result: result, GeneratedAt: time.Now()}, nil
	}

	path, err := s.provider.Route(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).
			Int("point_count", len(req.Points)).
			Str("profile", req.Profile).
			Str("provider", s.provider.Name()).
			Msg("path computation failed")
		return nil, err
	}

	return &Response{
		Paths:       []Path{*path},
		Provider:    s.provider.Name(),
		GeneratedAt: time.Now(),
	}, nil
}

// Extent returns the extent requests are currently validated against.
func (s *Service) Extent() graph.Extent {
	return s.snapshot.Extent()
}

// ProviderName returns the name of the underlying provider.
func (s *Service) ProviderName() string {
	return s.provider.Name()
}
