// Package graph provides read-only access to a routing graph's node
// coordinates and the geographic extent derived from them.
//
// The graph itself (edges, weights, the search algorithm) lives in the
// routing engine; this package only knows about node coordinates, which is
// all request validation needs.
package graph

// NodeAccess is a read-only view of a graph's node coordinates.
// Implementations must be safe for concurrent readers.
type NodeAccess interface {
	// NodeCount returns the number of nodes in the graph.
	NodeCount() int

	// Lat returns the latitude of the node at index i.
	Lat(i int) float64

	// Lon returns the longitude of the node at index i.
	Lon(i int) float64
}

// Node is a single graph node coordinate.
type Node struct {
	Lat float64
	Lon float64
}

// MemoryNodeStore is an in-memory NodeAccess. It is immutable after
// construction.
type MemoryNodeStore struct {
	lats []float64
	lons []float64
}

// NewMemoryNodeStore creates a MemoryNodeStore from a node slice.
func NewMemoryNodeStore(nodes []Node) *MemoryNodeStore {
	lats := make([]float64, len(nodes))
	lons := make([]float64, len(nodes))
	for i, n := range nodes {
		lats[i] = n.Lat
		lons[i] = n.Lon
	}
	return &MemoryNodeStore{lats: lats, lons: lons}
}

// NodeCount returns the number of nodes in the store.
func (s *MemoryNodeStore) NodeCount() int {
	return len(s.lats)
}

// Lat returns the latitude of the node at index i.
func (s *MemoryNodeStore) Lat(i int) float64 {
	return s.lats[i]
}

// Lon returns the longitude of the node at index i.
func (s *MemoryNodeStore) Lon(i int) float64 {
	return s.lons[i]
}
