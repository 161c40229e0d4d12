package route

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridroute/gridroute/internal/graph"
)

func wp(lat, lon float64) *Waypoint {
	return &Waypoint{Lat: lat, Lon: lon}
}

func extentFor(t *testing.T, minLat, minLon, maxLat, maxLon float64) graph.Extent {
	t.Helper()
	// Two corner nodes are enough to pin the bounding box, same as a
	// minimal graph would.
	store := graph.NewMemoryNodeStore([]graph.Node{
		{Lat: minLat, Lon: minLon},
		{Lat: maxLat, Lon: maxLon},
	})
	ext, err := graph.ExtentFromNodes(store)
	require.NoError(t, err)
	return ext
}

func messagesContain(t *testing.T, errs []ValidationError, tokens ...string) {
	t.Helper()
	for _, e := range errs {
		msg := strings.ToLower(e.Message)
		all := true
		for _, tok := range tokens {
			if !strings.Contains(msg, tok) {
				all = false
				break
			}
		}
		if all {
			return
		}
	}
	t.Errorf("no error message contains all of %v, got %v", tokens, errs)
}

func TestValidate_EmptyRequest(t *testing.T) {
	v := NewValidator(DefaultPolicy())
	ext := extentFor(t, -10, -10, 10, 10)

	res := v.Validate(&Request{}, ext)

	require.True(t, res.HasErrors())
	require.Len(t, res.Errors(), 1)
	messagesContain(t, res.Errors(), "point")
	assert.Equal(t, NoIndex, res.Errors()[0].Index)
}

func TestValidate_NullPointInMiddle(t *testing.T) {
	v := NewValidator(DefaultPolicy())
	ext := extentFor(t, -5, -5, 5, 5)

	req := &Request{Points: []*Waypoint{wp(0, 0), nil, wp(1, 1)}}
	res := v.Validate(req, ext)

	require.True(t, res.HasErrors())
	require.Len(t, res.Errors(), 1)
	messagesContain(t, res.Errors(), "null", "point")
	assert.Equal(t, 1, res.Errors()[0].Index)
}

func TestValidate_AllNullPointsReported(t *testing.T) {
	v := NewValidator(DefaultPolicy())
	ext := extentFor(t, -5, -5, 5, 5)

	req := &Request{Points: []*Waypoint{nil, wp(0, 0), nil}}
	res := v.Validate(req, ext)

	require.True(t, res.HasErrors())
	require.Len(t, res.Errors(), 2)
	assert.Equal(t, 0, res.Errors()[0].Index)
	assert.Equal(t, 2, res.Errors()[1].Index)
	for _, e := range res.Errors() {
		assert.Contains(t, strings.ToLower(e.Message), "null")
		assert.Contains(t, strings.ToLower(e.Message), "point")
	}
}

func TestValidate_NullPointsStopAttributeChecks(t *testing.T) {
	v := NewValidator(DefaultPolicy())
	ext := extentFor(t, -5, -5, 5, 5)

	// Curbside count is also wrong, but the request has a hole in the
	// point list, so only the null error may surface.
	req := &Request{
		Points:    []*Waypoint{wp(0, 0), nil},
		Curbsides: []Curbside{CurbsideLeft},
	}
	res := v.Validate(req, ext)

	require.True(t, res.HasErrors())
	require.Len(t, res.Errors(), 1)
	messagesContain(t, res.Errors(), "null", "point")
}

func TestValidate_PointOutOfBounds(t *testing.T) {
	v := NewValidator(DefaultPolicy())
	ext := extentFor(t, -2, -2, 2, 2)

	req := &Request{Points: []*Waypoint{wp(0, 0), wp(50, 50)}}
	res := v.Validate(req, ext)

	require.True(t, res.HasErrors())
	require.Len(t, res.Errors(), 1)
	messagesContain(t, res.Errors(), "bound")
	assert.Equal(t, 1, res.Errors()[0].Index)
}

func TestValidate_AllOutOfBoundsPointsReported(t *testing.T) {
	v := NewValidator(DefaultPolicy())
	ext := extentFor(t, -2, -2, 2, 2)

	req := &Request{Points: []*Waypoint{wp(50, 50), wp(0, 0), wp(-30, 0)}}
	res := v.Validate(req, ext)

	require.True(t, res.HasErrors())
	require.Len(t, res.Errors(), 2)
	assert.Equal(t, 0, res.Errors()[0].Index)
	assert.Equal(t, 2, res.Errors()[1].Index)
}

func TestValidate_BoundaryPointsAccepted(t *testing.T) {
	v := NewValidator(DefaultPolicy())
	ext := extentFor(t, -2, -2, 2, 2)

	tests := []struct {
		name  string
		point *Waypoint
	}{
		{"min lat edge", wp(-2, 0)},
		{"max lat edge", wp(2, 0)},
		{"min lon edge", wp(0, -2)},
		{"max lon edge", wp(0, 2)},
		{"min corner", wp(-2, -2)},
		{"max corner", wp(2, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Validate(&Request{Points: []*Waypoint{tt.point}}, ext)
			assert.False(t, res.HasErrors(), "boundary point must be inside: %v", res.Errors())
		})
	}
}

func TestValidate_BoundsAndAttributeErrorsAccumulate(t *testing.T) {
	v := NewValidator(DefaultPolicy())
	ext := extentFor(t, -2, -2, 2, 2)

	req := &Request{
		Points:    []*Waypoint{wp(0, 0), wp(50, 50)},
		Headings:  []float64{-45, 90},
		Curbsides: []Curbside{CurbsideLeft},
	}
	res := v.Validate(req, ext)

	require.True(t, res.HasErrors())
	messagesContain(t, res.Errors(), "bound")
	messagesContain(t, res.Errors(), "heading")
	messagesContain(t, res.Errors(), "curbside")
}

func TestValidate_HeadingCountMismatch(t *testing.T) {
	v := NewValidator(DefaultPolicy())
	ext := extentFor(t, -5, -5, 5, 5)

	req := &Request{
		Points:   []*Waypoint{wp(0, 0), wp(1, 1), wp(2, 2)},
		Headings: []float64{45, 90},
	}
	res := v.Validate(req, ext)

	require.True(t, res.HasErrors())
	require.Len(t, res.Errors(), 1)
	msg := strings.ToLower(res.Errors()[0].Message)
	assert.Contains(t, msg, "heading")
	assert.Contains(t, msg, "3")
	assert.Contains(t, msg, "2")
}

func TestValidate_SingleDepartureHeading(t *testing.T) {
	ext := extentFor(t, -5, -5, 5, 5)
	req := &Request{
		Points:   []*Waypoint{wp(0, 0), wp(1, 1), wp(2, 2)},
		Headings: []float64{45},
	}

	t.Run("accepted by default", func(t *testing.T) {
		v := NewValidator(DefaultPolicy())
		res := v.Validate(req, ext)
		assert.False(t, res.HasErrors(), "unexpected errors: %v", res.Errors())
	})

	t.Run("rejected when disallowed", func(t *testing.T) {
		v := NewValidator(Policy{AllowDepartureHeading: false})
		res := v.Validate(req, ext)
		require.True(t, res.HasErrors())
		messagesContain(t, res.Errors(), "heading")
	})
}

func TestValidate_HeadingRange(t *testing.T) {
	v := NewValidator(DefaultPolicy())
	ext := extentFor(t, -5, -5, 5, 5)

	tests := []struct {
		name    string
		heading float64
		valid   bool
	}{
		{"zero", 0, true},
		{"north-east", 45, true},
		{"just below 360", 359.999, true},
		{"nan is no preference", math.NaN(), true},
		{"negative", -45, false},
		{"exactly 360", 360, false},
		{"above 360", 400, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &Request{
				Points:   []*Waypoint{wp(0, 0), wp(1, 1)},
				Headings: []float64{tt.heading, 90},
			}
			res := v.Validate(req, ext)
			if tt.valid {
				assert.False(t, res.HasErrors(), "unexpected errors: %v", res.Errors())
				return
			}
			require.True(t, res.HasErrors())
			require.Len(t, res.Errors(), 1)
			messagesContain(t, res.Errors(), "heading")
			assert.Equal(t, 0, res.Errors()[0].Index)
		})
	}
}

func TestValidate_CurbsideCountMismatch(t *testing.T) {
	v := NewValidator(DefaultPolicy())
	ext := extentFor(t, -10, -10, 10, 10)

	// One curbside short, the single-value shorthand does not exist for
	// curbsides.
	req := &Request{
		Points:    []*Waypoint{wp(0, 0), wp(1, 1), wp(2, 2), wp(3, 3)},
		Curbsides: []Curbside{CurbsideLeft, CurbsideRight, CurbsideAny},
	}
	res := v.Validate(req, ext)

	require.True(t, res.HasErrors())
	require.Len(t, res.Errors(), 1)
	messagesContain(t, res.Errors(), "curbside")
}

func TestValidate_CurbsideVocabulary(t *testing.T) {
	v := NewValidator(DefaultPolicy())
	ext := extentFor(t, -5, -5, 5, 5)

	req := &Request{
		Points:    []*Waypoint{wp(0, 0), wp(1, 1)},
		Curbsides: []Curbside{CurbsideLeft, Curbside("middle")},
	}
	res := v.Validate(req, ext)

	require.True(t, res.HasErrors())
	require.Len(t, res.Errors(), 1)
	messagesContain(t, res.Errors(), "curbside")
	assert.Equal(t, 1, res.Errors()[0].Index)
}

func TestValidate_CurbsidesValid(t *testing.T) {
	v := NewValidator(DefaultPolicy())
	ext := extentFor(t, -5, -5, 5, 5)

	req := &Request{
		Points:    []*Waypoint{wp(0, 0), wp(1, 1), wp(2, 2), wp(3, 3)},
		Curbsides: []Curbside{CurbsideLeft, CurbsideRight, CurbsideAny, CurbsideNone},
	}
	res := v.Validate(req, ext)

	assert.False(t, res.HasErrors(), "unexpected errors: %v", res.Errors())
}

func TestValidate_PointHintCountMismatch(t *testing.T) {
	v := NewValidator(DefaultPolicy())
	ext := extentFor(t, -10, -10, 10, 10)

	t.Run("too few", func(t *testing.T) {
		req := &Request{
			Points:     []*Waypoint{wp(0, 0), wp(1, 1), wp(2, 2), wp(3, 3), wp(4, 4)},
			PointHints: []string{"Main Street", "Church Lane"},
		}
		res := v.Validate(req, ext)
		require.True(t, res.HasErrors())
		messagesContain(t, res.Errors(), "hint")
	})

	t.Run("too many", func(t *testing.T) {
		req := &Request{
			Points:     []*Waypoint{wp(0, 0), wp(1, 1)},
			PointHints: []string{"a", "b", "c", "d"},
		}
		res := v.Validate(req, ext)
		require.True(t, res.HasErrors())
		messagesContain(t, res.Errors(), "hint")
	})
}

func TestValidate_ValidRequest(t *testing.T) {
	v := NewValidator(DefaultPolicy())
	ext := extentFor(t, -5, -5, 5, 5)

	req := &Request{
		Points:     []*Waypoint{wp(0, 0), wp(1, 1), wp(2, 2)},
		Headings:   []float64{math.NaN(), 90, 359.5},
		Curbsides:  []Curbside{CurbsideAny, CurbsideLeft, CurbsideRight},
		PointHints: []string{"", "Dam Square", ""},
	}
	res := v.Validate(req, ext)

	assert.False(t, res.HasErrors(), "unexpected errors: %v", res.Errors())
	assert.Empty(t, res.Errors())
}

func TestValidate_EmptyOptionalSequencesIgnored(t *testing.T) {
	v := NewValidator(DefaultPolicy())
	ext := extentFor(t, -5, -5, 5, 5)

	req := &Request{
		Points:     []*Waypoint{wp(0, 0), wp(1, 1)},
		Headings:   []float64{},
		Curbsides:  []Curbside{},
		PointHints: []string{},
	}
	res := v.Validate(req, ext)

	assert.False(t, res.HasErrors(), "unexpected errors: %v", res.Errors())
}

func TestValidate_ErrorOrderFollowsCheckOrder(t *testing.T) {
	v := NewValidator(DefaultPolicy())
	ext := extentFor(t, -2, -2, 2, 2)

	req := &Request{
		Points:     []*Waypoint{wp(50, 50), wp(0, 0)},
		Headings:   []float64{400, 90},
		Curbsides:  []Curbside{CurbsideLeft},
		PointHints: []string{"only one"},
	}
	res := v.Validate(req, ext)

	require.True(t, res.HasErrors())
	require.Len(t, res.Errors(), 4)
	assert.Contains(t, strings.ToLower(res.Errors()[0].Message), "bound")
	assert.Contains(t, strings.ToLower(res.Errors()[1].Message), "heading")
	assert.Contains(t, strings.ToLower(res.Errors()[2].Message), "curbside")
	assert.Contains(t, strings.ToLower(res.Errors()[3].Message), "hint")
}
