package polyline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_ReferenceVector(t *testing.T) {
	// Example from the Google polyline format documentation.
	points, err := Decode("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	require.NoError(t, err)

	require.Len(t, points, 3)
	assert.InDelta(t, 38.5, points[0][0], 1e-5)
	assert.InDelta(t, -120.2, points[0][1], 1e-5)
	assert.InDelta(t, 40.7, points[1][0], 1e-5)
	assert.InDelta(t, -120.95, points[1][1], 1e-5)
	assert.InDelta(t, 43.252, points[2][0], 1e-5)
	assert.InDelta(t, -126.453, points[2][1], 1e-5)
}

func TestEncode_ReferenceVector(t *testing.T) {
	encoded := Encode([][2]float64{
		{38.5, -120.2},
		{40.7, -120.95},
		{43.252, -126.453},
	})
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", encoded)
}

func TestRoundTrip(t *testing.T) {
	original := [][2]float64{
		{52.3676, 4.9041},
		{52.3702, 4.8952},
		{52.3791, 4.9003},
		{-33.8688, 151.2093},
	}

	decoded, err := Decode(Encode(original))
	require.NoError(t, err)

	require.Len(t, decoded, len(original))
	for i := range original {
		assert.InDelta(t, original[i][0], decoded[i][0], 1e-5)
		assert.InDelta(t, original[i][1], decoded[i][1], 1e-5)
	}
}

func TestDecode_Empty(t *testing.T) {
	points, err := Decode("")
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestDecode_Truncated(t *testing.T) {
	_, err := Decode("_p~iF~ps|U_")
	assert.ErrorIs(t, err, ErrInvalidPolyline)
}

func TestDecode_InvalidByte(t *testing.T) {
	_, err := Decode("\x1f\x1f")
	assert.ErrorIs(t, err, ErrInvalidPolyline)
}
