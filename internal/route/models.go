// Package route defines routing requests and the validation gate every
// request passes through before any path computation begins.
package route

// Waypoint is a single geographic coordinate in a route request.
type Waypoint struct {
	Lat float64
	Lon float64
}

// Curbside constrains which side of the road a waypoint must be approached
// or departed from.
type Curbside string

// The closed curbside vocabulary. An empty value leaves the side
// unconstrained.
const (
	CurbsideAny   Curbside = "any"
	CurbsideLeft  Curbside = "left"
	CurbsideRight Curbside = "right"
	CurbsideNone  Curbside = ""
)

// Valid reports whether c belongs to the curbside vocabulary.
func (c Curbside) Valid() bool {
	switch c {
	case CurbsideAny, CurbsideLeft, CurbsideRight, CurbsideNone:
		return true
	}
	return false
}

// Request is a routing request: an ordered sequence of waypoint slots plus
// optional per-waypoint directives.
//
// A slot may be nil; the validator rejects such requests before they reach
// the engine. Each optional sequence is either absent (nil) or aligned to
// the waypoints by index. A heading of NaN means "no preference".
//
// A Request must be fully constructed before it is handed to the validator;
// it is not mutated afterwards.
type Request struct {
	Points     []*Waypoint
	Headings   []float64
	Curbsides  []Curbside
	PointHints []string
	Profile    string
}
