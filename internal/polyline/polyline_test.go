package polyline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference example from the polyline algorithm documentation.
func TestDecodeKnownString(t *testing.T) {
	points, err := Decode("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	require.NoError(t, err)
	require.Len(t, points, 3)

	expected := [][2]float64{
		{38.5, -120.2},
		{40.7, -120.95},
		{43.252, -126.453},
	}
	for i, want := range expected {
		assert.InDelta(t, want[0], points[i][0], 1e-5)
		assert.InDelta(t, want[1], points[i][1], 1e-5)
	}
}

func TestDecodeEmpty(t *testing.T) {
	points, err := Decode("")
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestDecodeTruncated(t *testing.T) {
	// A continuation character with nothing after it.
	_, err := Decode("_p~iF~ps|U_")
	require.ErrorIs(t, err, ErrTruncated)

	// The error must be total: no partial points alongside it.
	points, err := Decode("_")
	require.ErrorIs(t, err, ErrTruncated)
	assert.Nil(t, points)
}

func TestRoundTrip(t *testing.T) {
	cases := [][][2]float64{
		{{0, 0}},
		{{38.5, -120.2}, {40.7, -120.95}, {43.252, -126.453}},
		{{-33.8688, 151.2093}, {-37.8136, 144.9631}},
		{{41.8781, -87.6298}, {41.8781, -87.6298}}, // repeated point, zero delta
		{{89.99999, 179.99999}, {-89.99999, -179.99999}},
	}

	for _, points := range cases {
		decoded, err := Decode(Encode(points))
		require.NoError(t, err)
		require.Len(t, decoded, len(points))
		for i := range points {
			assert.InDelta(t, points[i][0], decoded[i][0], 1e-5)
			assert.InDelta(t, points[i][1], decoded[i][1], 1e-5)
		}
	}
}

func TestRoundTripDenseTrace(t *testing.T) {
	// A synthetic 500-point trace with small jitter, the shape of a real
	// OSRM geometry.
	points := make([][2]float64, 500)
	lat, lon := 41.25, -95.93
	for i := range points {
		lat += 0.0007 * math.Sin(float64(i)/9)
		lon += 0.0011
		points[i] = [2]float64{math.Round(lat*1e5) / 1e5, math.Round(lon*1e5) / 1e5}
	}

	decoded, err := Decode(Encode(points))
	require.NoError(t, err)
	require.Len(t, decoded, len(points))
	for i := range points {
		assert.InDelta(t, points[i][0], decoded[i][0], 1e-5)
		assert.InDelta(t, points[i][1], decoded[i][1], 1e-5)
	}
}
