package graph

import (
	"errors"
	"fmt"
)

// ErrNoNodes is returned when an extent is requested for a graph without
// nodes. An extent over zero coordinates has no meaningful containment test,
// so construction refuses it instead of handing out a degenerate box.
var ErrNoNodes = errors.New("graph has no nodes")

// Extent is the axis-aligned bounding box of a graph's node coordinates.
// It is computed once per graph load and never mutated afterwards, so it is
// safe to share across goroutines.
type Extent struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// ExtentFromNodes scans all node coordinates and returns their bounding box.
func ExtentFromNodes(nodes NodeAccess) (Extent, error) {
	count := nodes.NodeCount()
	if count == 0 {
		return Extent{}, ErrNoNodes
	}

	ext := Extent{
		MinLat: nodes.Lat(0),
		MaxLat: nodes.Lat(0),
		MinLon: nodes.Lon(0),
		MaxLon: nodes.Lon(0),
	}
	for i := 1; i < count; i++ {
		lat, lon := nodes.Lat(i), nodes.Lon(i)
		if lat < ext.MinLat {
			ext.MinLat = lat
		}
		if lat > ext.MaxLat {
			ext.MaxLat = lat
		}
		if lon < ext.MinLon {
			ext.MinLon = lon
		}
		if lon > ext.MaxLon {
			ext.MaxLon = lon
		}
	}
	return ext, nil
}

// Contains reports whether the coordinate lies within the extent.
// Both boundaries are inclusive: a point exactly on the edge of the box is
// inside, so coordinates equal to the graph's outermost nodes are accepted.
func (e Extent) Contains(lat, lon float64) bool {
	return lat >= e.MinLat && lat <= e.MaxLat &&
		lon >= e.MinLon && lon <= e.MaxLon
}

// String formats the extent for error messages and logs.
func (e Extent) String() string {
	return fmt.Sprintf("lat[%g,%g],lon[%g,%g]", e.MinLat, e.MaxLat, e.MinLon, e.MaxLon)
}
