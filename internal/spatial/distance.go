// Package spatial holds the great-circle helpers used for leg mileage.
package spatial

import (
	"github.com/golang/geo/s2"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	MetersPerMile     = 1609.344
)

// HaversineDistance calculates the great-circle distance between two
// points in meters.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// MilesBetween is HaversineDistance in statute miles, the unit the duty
// log records.
func MilesBetween(lat1, lon1, lat2, lon2 float64) float64 {
	return HaversineDistance(lat1, lon1, lat2, lon2) / MetersPerMile
}

// Interpolate returns the point a fraction t of the way along the great
// circle from point 1 to point 2, used to place intermediate stops
// (fuel, breaks, overnight rest) along a drive.
func Interpolate(t, lat1, lon1, lat2, lon2 float64) (float64, float64) {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)

	p := s2.Interpolate(t, s2.PointFromLatLng(p1), s2.PointFromLatLng(p2))
	latLng := s2.LatLngFromPoint(p)

	return latLng.Lat.Degrees(), latLng.Lng.Degrees()
}

// Midpoint returns the point halfway between two points.
func Midpoint(lat1, lon1, lat2, lon2 float64) (float64, float64) {
	return Interpolate(0.5, lat1, lon1, lat2, lon2)
}
