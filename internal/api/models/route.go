package models

// RouteComputeRequest is the request body for computing a route.
//
// Points is an ordered list of waypoint slots; a JSON null element is kept
// as a nil slot so the validator can attribute the fault to its index
// instead of the decoder silently dropping it. Headings use null for "no
// preference" since JSON has no NaN.
type RouteComputeRequest struct {
	Profile    string     `json:"profile,omitempty"`
	Points     []*Point   `json:"points"`
	Headings   []*float64 `json:"headings,omitempty"`
	Curbsides  []string   `json:"curbsides,omitempty"`
	PointHints []string   `json:"pointHints,omitempty"`
}

// RouteComputeResponse is the response for a computed route.
type RouteComputeResponse struct {
	GeneratedAt Timestamp `json:"generatedAt"`
	Provider    string    `json:"provider"`
	Paths       []PathDTO `json:"paths"`
}

// PathDTO is a single computed path on the wire.
type PathDTO struct {
	DistanceMeters  float64 `json:"distanceMeters"`
	DurationSeconds float64 `json:"durationSeconds"`
	// Geometry is the encoded polyline (precision 5) of the path.
	Geometry string `json:"geometry"`
}
