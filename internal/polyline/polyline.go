// Package polyline implements Google's encoded polyline algorithm, the
// compact signed-delta coordinate encoding returned by OSRM route geometry.
package polyline

import (
	"errors"
	"math"
)

// precision is the standard 5-decimal-place scale used by OSRM and Google.
const precision = 1e5

// ErrTruncated is returned when an encoded string ends in the middle of a
// continuation sequence. Decoding is all-or-nothing: a malformed input
// never yields partial points.
var ErrTruncated = errors.New("polyline: truncated continuation sequence")

// Decode converts an encoded polyline into ordered [lat, lon] pairs.
// An empty input yields an empty result.
func Decode(encoded string) ([][2]float64, error) {
	if encoded == "" {
		return nil, nil
	}

	var points [][2]float64
	index := 0
	lat := 0
	lon := 0

	for index < len(encoded) {
		latDelta, next, err := decodeValue(encoded, index)
		if err != nil {
			return nil, err
		}
		index = next
		lat += latDelta

		lonDelta, next, err := decodeValue(encoded, index)
		if err != nil {
			return nil, err
		}
		index = next
		lon += lonDelta

		points = append(points, [2]float64{
			float64(lat) / precision,
			float64(lon) / precision,
		})
	}

	return points, nil
}

// decodeValue reads one zig-zag-encoded delta starting at index.
// Each character carries 5 payload bits; bit 5 is the continuation flag.
func decodeValue(encoded string, index int) (int, int, error) {
	shift := 0
	result := 0

	for {
		if index >= len(encoded) {
			return 0, index, ErrTruncated
		}
		b := int(encoded[index]) - 63
		index++
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}

	// Zig-zag decode: low bit carries the sign.
	if result&1 != 0 {
		return ^(result >> 1), index, nil
	}
	return result >> 1, index, nil
}

// Encode converts [lat, lon] pairs into an encoded polyline.
func Encode(points [][2]float64) string {
	if len(points) == 0 {
		return ""
	}

	encoded := make([]byte, 0, len(points)*4)
	prevLat := 0
	prevLon := 0

	for _, p := range points {
		lat := int(math.Round(p[0] * precision))
		lon := int(math.Round(p[1] * precision))

		encoded = encodeValue(encoded, lat-prevLat)
		encoded = encodeValue(encoded, lon-prevLon)

		prevLat = lat
		prevLon = lon
	}

	return string(encoded)
}

func encodeValue(buf []byte, value int) []byte {
	if value < 0 {
		value = ^(value << 1)
	} else {
		value <<= 1
	}

	for value >= 0x20 {
		buf = append(buf, byte((value&0x1f)|0x20)+63)
		value >>= 5
	}
	return append(buf, byte(value)+63)
}
