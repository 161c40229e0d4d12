// Package polyline encodes and decodes Google encoded polylines at
// precision 5, the geometry format spoken by most routing engines.
package polyline

import (
	"errors"
	"math"
)

// ErrInvalidPolyline is returned when a polyline string is malformed or
// truncated.
var ErrInvalidPolyline = errors.New("invalid polyline encoding")

const precision = 1e5

// Encode encodes a sequence of {lat, lon} coordinates.
func Encode(points [][2]float64) string {
	buf := make([]byte, 0, len(points)*6)
	var prevLat, prevLon int64
	for _, p := range points {
		lat := int64(math.Round(p[0] * precision))
		lon := int64(math.Round(p[1] * precision))
		buf = appendDelta(buf, lat-prevLat)
		buf = appendDelta(buf, lon-prevLon)
		prevLat, prevLon = lat, lon
	}
	return string(buf)
}

// Decode decodes a polyline into {lat, lon} coordinates.
func Decode(s string) ([][2]float64, error) {
	var points [][2]float64
	var lat, lon int64
	for i := 0; i < len(s); {
		dLat, n, err := decodeDelta(s[i:])
		if err != nil {
			return nil, err
		}
		i += n

		dLon, n, err := decodeDelta(s[i:])
		if err != nil {
			return nil, err
		}
		i += n

		lat += dLat
		lon += dLon
		points = append(points, [2]float64{
			float64(lat) / precision,
			float64(lon) / precision,
		})
	}
	return points, nil
}

// appendDelta writes one zigzag-encoded delta in 5-bit chunks.
func appendDelta(buf []byte, v int64) []byte {
	u := uint64(v) << 1
	if v < 0 {
		u = ^u
	}
	for u >= 0x20 {
		buf = append(buf, byte(0x20|(u&0x1f))+63)
		u >>= 5
	}
	return append(buf, byte(u)+63)
}

// decodeDelta reads one delta and returns it with the number of bytes
// consumed.
func decodeDelta(s string) (int64, int, error) {
	var u uint64
	var shift uint
	for i := 0; i < len(s); i++ {
		b := int64(s[i]) - 63
		if b < 0 {
			return 0, 0, ErrInvalidPolyline
		}
		u |= uint64(b&0x1f) << shift
		shift += 5
		if b < 0x20 {
			v := int64(u >> 1)
			if u&1 != 0 {
				v = ^v
			}
			return v, i + 1, nil
		}
	}
	return 0, 0, ErrInvalidPolyline
}
