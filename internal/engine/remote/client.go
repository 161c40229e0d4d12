// Package remote implements an engine.Provider backed by the HTTP API of a
// remote routing engine instance.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/gridroute/gridroute/internal/engine"
	"github.com/gridroute/gridroute/internal/resilience"
	"github.com/gridroute/gridroute/internal/route"
	"github.com/gridroute/gridroute/pkg/polyline"
)

const providerName = "remote-engine"

// Config holds configuration for the remote engine client.
type Config struct {
	// BaseURL of the engine instance, without trailing slash.
	BaseURL string

	// APIKey is sent as a bearer token when set.
	APIKey string

	// Timeout per HTTP attempt. Default: 10 seconds.
	Timeout time.Duration

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client calls a remote routing engine. It satisfies engine.Provider.
type Client struct {
	baseURL string
	apiKey  string
	http    *resilience.Client
	logger  zerolog.Logger
}

// New creates a remote engine client.
func New(cfg Config) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http: resilience.NewClient(resilience.ClientConfig{
			Name:    providerName,
			Timeout: cfg.Timeout,
		}),
		logger: cfg.Logger,
	}
}

// Name returns the provider identifier.
func (c *Client) Name() string {
	return providerName
}

// routeBody is the engine's request payload. Points are [lon, lat] pairs.
type routeBody struct {
	Profile    string      `json:"profile,omitempty"`
	Points     [][]float64 `json:"points"`
	Headings   []float64   `json:"headings,omitempty"`
	Curbsides  []string    `json:"curbsides,omitempty"`
	PointHints []string    `json:"point_hints,omitempty"`
}

type routeReply struct {
	Paths []struct {
		Distance float64 `json:"distance"`
		Time     int64   `json:"time"` // milliseconds
		Points   string  `json:"points"`
	} `json:"paths"`
	Message string `json:"message"`
}

// Route computes a path through the request's waypoints. The request has
// already passed validation; the engine is not expected to reject it.
func (c *Client) Route(ctx context.Context, req *route.Request) (*engine.Path, error) {
	body := routeBody{
		Profile:    req.Profile,
		Points:     make([][]float64, len(req.Points)),
		Curbsides:  make([]string, 0, len(req.Curbsides)),
		PointHints: req.PointHints,
	}
	for i, p := range req.Points {
		body.Points[i] = []float64{p.Lon, p.Lat}
	}
	for _, h := range req.Headings {
		// The wire format has no NaN; the engine treats negatives as
		// unconstrained.
		if math.IsNaN(h) {
			h = -1
		}
		body.Headings = append(body.Headings, h)
	}
	for _, cs := range req.Curbsides {
		body.Curbsides = append(body.Curbsides, string(cs))
	}
	if len(body.Curbsides) == 0 {
		body.Curbsides = nil
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal route request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/route", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create route request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if errors.Is(err, resilience.ErrCircuitOpen) {
			return nil, engine.ErrProviderUnavailable
		}
		return nil, fmt.Errorf("call routing engine: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read engine response: %w", err)
	}

	var reply routeReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return nil, fmt.Errorf("decode engine response: %w", err)
	}

	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound {
		c.logger.Debug().
			Int("status", resp.StatusCode).
			Str("message", reply.Message).
			Msg("engine found no route")
		return nil, fmt.Errorf("%w: %s", engine.ErrNoRouteFound, reply.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("routing engine returned status %d", resp.StatusCode)
	}
	if len(reply.Paths) == 0 {
		return nil, engine.ErrNoRouteFound
	}

	best := reply.Paths[0]
	coords, err := polyline.Decode(best.Points)
	if err != nil {
		return nil, fmt.Errorf("decode path geometry: %w", err)
	}
	points := make([]route.Waypoint, len(coords))
	for i, c := range coords {
		points[i] = route.Waypoint{Lat: c[0], Lon: c[1]}
	}

	return &engine.Path{
		DistanceMeters:  best.Distance,
		DurationSeconds: float64(best.Time) / 1000,
		Points:          points,
		Polyline:        best.Points,
	}, nil
}
