package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridroute/gridroute/internal/engine"
	"github.com/gridroute/gridroute/internal/route"
	"github.com/gridroute/gridroute/pkg/polyline"
)

func TestClient_Route(t *testing.T) {
	geometry := polyline.Encode([][2]float64{
		{52.3676, 4.9041},
		{52.0907, 5.1214},
	})

	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/route", r.URL.Path)
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		// JSON-escape the geometry: encoded polylines may contain `\` or `"`.
		quoted, err := json.Marshal(geometry)
		require.NoError(t, err)
		_, _ = w.Write([]byte(`{"paths":[{"distance":44213.4,"time":2712000,"points":` + string(quoted) + `}]}`))
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL, APIKey: "secret", Logger: zerolog.Nop()})

	path, err := client.Route(context.Background(), &route.Request{
		Profile: "car",
		Points: []*route.Waypoint{
			{Lat: 52.3676, Lon: 4.9041},
			{Lat: 52.0907, Lon: 5.1214},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 44213.4, path.DistanceMeters)
	assert.Equal(t, 2712.0, path.DurationSeconds)
	require.Len(t, path.Points, 2)
	assert.InDelta(t, 52.3676, path.Points[0].Lat, 1e-5)
	assert.InDelta(t, 4.9041, path.Points[0].Lon, 1e-5)

	// Engine expects [lon, lat] order.
	points := gotBody["points"].([]any)
	first := points[0].([]any)
	assert.InDelta(t, 4.9041, first[0].(float64), 1e-9)
	assert.InDelta(t, 52.3676, first[1].(float64), 1e-9)
}

func TestClient_Route_NoRouteFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"connection between locations not found"}`))
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL, Logger: zerolog.Nop()})

	_, err := client.Route(context.Background(), &route.Request{
		Points: []*route.Waypoint{{Lat: 0, Lon: 0}, {Lat: 1, Lon: 1}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrNoRouteFound)
	assert.Contains(t, err.Error(), "connection between locations not found")
}

func TestClient_Route_EmptyPaths(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"paths":[]}`))
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL, Logger: zerolog.Nop()})

	_, err := client.Route(context.Background(), &route.Request{
		Points: []*route.Waypoint{{Lat: 0, Lon: 0}, {Lat: 1, Lon: 1}},
	})

	assert.ErrorIs(t, err, engine.ErrNoRouteFound)
}
