package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtentFromNodes(t *testing.T) {
	store := NewMemoryNodeStore([]Node{
		{Lat: 52.3676, Lon: 4.9041},
		{Lat: 51.9244, Lon: 4.4777},
		{Lat: 52.0907, Lon: 5.1214},
	})

	ext, err := ExtentFromNodes(store)
	require.NoError(t, err)

	assert.Equal(t, 51.9244, ext.MinLat)
	assert.Equal(t, 52.3676, ext.MaxLat)
	assert.Equal(t, 4.4777, ext.MinLon)
	assert.Equal(t, 5.1214, ext.MaxLon)
}

func TestExtentFromNodes_SingleNode(t *testing.T) {
	store := NewMemoryNodeStore([]Node{{Lat: 45.5, Lon: -73.5}})

	ext, err := ExtentFromNodes(store)
	require.NoError(t, err)

	assert.Equal(t, Extent{MinLat: 45.5, MaxLat: 45.5, MinLon: -73.5, MaxLon: -73.5}, ext)
	assert.True(t, ext.Contains(45.5, -73.5))
}

func TestExtentFromNodes_EmptyGraph(t *testing.T) {
	store := NewMemoryNodeStore(nil)

	_, err := ExtentFromNodes(store)
	require.ErrorIs(t, err, ErrNoNodes)
}

func TestExtent_Contains(t *testing.T) {
	ext := Extent{MinLat: -2, MaxLat: 2, MinLon: -2, MaxLon: 2}

	tests := []struct {
		name string
		lat  float64
		lon  float64
		want bool
	}{
		{"center", 0, 0, true},
		{"inside off-center", 1.5, -1.5, true},
		{"on min lat boundary", -2, 0, true},
		{"on max lat boundary", 2, 0, true},
		{"on min lon boundary", 0, -2, true},
		{"on max lon boundary", 0, 2, true},
		{"corner", -2, -2, true},
		{"opposite corner", 2, 2, true},
		{"lat below", -2.0001, 0, false},
		{"lat above", 2.0001, 0, false},
		{"lon below", 0, -2.0001, false},
		{"lon above", 0, 2.0001, false},
		{"far outside", 50, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ext.Contains(tt.lat, tt.lon))
		})
	}
}

func TestSnapshot_Swap(t *testing.T) {
	first := Extent{MinLat: -1, MaxLat: 1, MinLon: -1, MaxLon: 1}
	snap := NewSnapshot(first, "2026-08-01")

	assert.Equal(t, first, snap.Extent())
	assert.Equal(t, "2026-08-01", snap.Version())

	loaded := snap.LoadedAt()

	second := Extent{MinLat: -5, MaxLat: 5, MinLon: -5, MaxLon: 5}
	snap.Swap(second, "2026-08-15")

	assert.Equal(t, second, snap.Extent())
	assert.Equal(t, "2026-08-15", snap.Version())
	assert.False(t, snap.LoadedAt().Before(loaded))
}
