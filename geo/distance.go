package geo

import "math"

// Distance returns the great-circle distance in kilometers between two points
// using the haversine formula. Altitude is ignored and inputs are not
// validated.
func Distance(p1, p2 GeoPoint) float64 {
	lat1, lon1 := radians(p1.Latitude), radians(p1.Longitude)
	lat2, lon2 := radians(p2.Latitude), radians(p2.Longitude)

	dlat := lat2 - lat1
	dlon := lon2 - lon1
	a := math.Pow(math.Sin(dlat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Asin(math.Sqrt(a))

	return c * EarthRadiusKm
}
