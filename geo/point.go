// Package geo provides the surface geometry used to relate an observer to a
// distant summit: great-circle distance and the apparent elevation angle.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by Distance.
const EarthRadiusKm = 6371.0

// GeoPoint is a position on the Earth's surface.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`  // degrees, north positive
	Longitude float64 `json:"longitude"` // degrees, east positive
	Altitude  float64 `json:"altitude"`  // meters above sea level
}

// Validate checks that latitude and longitude are within range.
func (p GeoPoint) Validate() error {
	if math.IsNaN(p.Latitude) || p.Latitude < -90 || p.Latitude > 90 {
		return &CoordinateError{Field: "latitude", Value: p.Latitude}
	}
	if math.IsNaN(p.Longitude) || p.Longitude < -180 || p.Longitude > 180 {
		return &CoordinateError{Field: "longitude", Value: p.Longitude}
	}
	return nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
