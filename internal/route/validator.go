package route

import (
	"fmt"
	"math"
	"slices"

	"github.com/gridroute/gridroute/internal/graph"
)

// Policy controls the parts of validation that are product decisions rather
// than structural requirements.
type Policy struct {
	// AllowDepartureHeading accepts a single heading for a multi-point
	// request, applied to the first waypoint only ("depart with this
	// heading"). When false the heading count must equal the point count.
	AllowDepartureHeading bool
}

// DefaultPolicy accepts a single departure heading, matching the behaviour
// of the common routing engines.
func DefaultPolicy() Policy {
	return Policy{AllowDepartureHeading: true}
}

// Validator is the sole gate between an inbound request and the routing
// engine. It holds no mutable state and is safe for concurrent use against
// the same extent and distinct requests.
type Validator struct {
	policy Policy
}

// NewValidator creates a Validator with the given policy.
func NewValidator(policy Policy) *Validator {
	return &Validator{policy: policy}
}

// Validate runs the request checks in a fixed order and returns the
// accumulated outcome. It never mutates the request or the extent.
//
// Structural failures stop validation early: with no points, or holes in the
// point list, the remaining checks are not well defined. Bounds and
// attribute failures accumulate so a single pass reports every independent
// problem.
func (v *Validator) Validate(req *Request, extent graph.Extent) Result {
	if len(req.Points) == 0 {
		return invalid([]ValidationError{{
			Message: "you have to pass at least one point",
			Index:   NoIndex,
		}})
	}

	var errs []ValidationError
	for i, p := range req.Points {
		if p == nil {
			errs = append(errs, ValidationError{
				Message: fmt.Sprintf("point %d is null", i),
				Index:   i,
			})
		}
	}
	if len(errs) > 0 {
		return invalid(errs)
	}

	for i, p := range req.Points {
		if !extent.Contains(p.Lat, p.Lon) {
			errs = append(errs, ValidationError{
				Message: fmt.Sprintf("point %d is out of bounds: %g,%g, the bounds are: %s",
					i, p.Lat, p.Lon, extent),
				Index: i,
			})
		}
	}

	n := len(req.Points)
	errs = append(errs, v.headingCheck(req.Headings, n).run()...)
	errs = append(errs, curbsideCheck(req.Curbsides, n).run()...)
	errs = append(errs, hintCheck(req.PointHints, n).run()...)

	return invalid(errs)
}

// alignedCheck validates an optional sequence that is aligned to the
// waypoints by index: the length must be one of the allowed values, and each
// element must pass the per-element check. The cardinality logic lives here
// once instead of being repeated for every attribute.
type alignedCheck struct {
	present  bool
	length   int
	allowed  []int
	countMsg func(actual int) string
	element  func(i int) *ValidationError
}

func (c alignedCheck) run() []ValidationError {
	if !c.present {
		return nil
	}
	if !slices.Contains(c.allowed, c.length) {
		return []ValidationError{{Message: c.countMsg(c.length), Index: NoIndex}}
	}
	if c.element == nil {
		return nil
	}
	var errs []ValidationError
	for i := 0; i < c.length; i++ {
		if e := c.element(i); e != nil {
			errs = append(errs, *e)
		}
	}
	return errs
}

func (v *Validator) headingCheck(headings []float64, n int) alignedCheck {
	allowed := []int{n}
	countMsg := func(actual int) string {
		return fmt.Sprintf("the number of headings must equal the number of points (%d), but was: %d",
			n, actual)
	}
	if v.policy.AllowDepartureHeading {
		allowed = []int{1, n}
		countMsg = func(actual int) string {
			return fmt.Sprintf("the number of headings must be one or equal to the number of points (%d), but was: %d",
				n, actual)
		}
	}
	return alignedCheck{
		// A zero-length sequence counts as absent.
		present:  len(headings) > 0,
		length:   len(headings),
		allowed:  allowed,
		countMsg: countMsg,
		element: func(i int) *ValidationError {
			h := headings[i]
			if math.IsNaN(h) || (h >= 0 && h < 360) {
				return nil
			}
			return &ValidationError{
				Message: fmt.Sprintf("heading for point %d must be in the range [0, 360) or NaN, but was: %g", i, h),
				Index:   i,
			}
		},
	}
}

func curbsideCheck(curbsides []Curbside, n int) alignedCheck {
	return alignedCheck{
		present: len(curbsides) > 0,
		length:  len(curbsides),
		allowed: []int{n},
		countMsg: func(actual int) string {
			return fmt.Sprintf("the number of curbsides (%d) must match the number of points (%d)",
				actual, n)
		},
		element: func(i int) *ValidationError {
			if curbsides[i].Valid() {
				return nil
			}
			return &ValidationError{
				Message: fmt.Sprintf("curbside for point %d must be one of [any, left, right] or empty, but was: %q",
					i, string(curbsides[i])),
				Index: i,
			}
		},
	}
}

func hintCheck(hints []string, n int) alignedCheck {
	return alignedCheck{
		present: len(hints) > 0,
		length:  len(hints),
		allowed: []int{n},
		countMsg: func(actual int) string {
			return fmt.Sprintf("the number of point hints (%d) must match the number of points (%d)",
				actual, n)
		},
	}
}
