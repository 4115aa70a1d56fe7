package sun

import (
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/devskill-org/peaklight/geo"
)

// NOAA is a Provider backed by github.com/nathan-osman/go-sunrise, which
// follows the NOAA solar calculator equations.
type NOAA struct{}

func (NOAA) Name() string { return ModelNOAA }

func (NOAA) Sunrise(p geo.GeoPoint, date time.Time) (time.Time, error) {
	rise, _ := sunrise.SunriseSunset(p.Latitude, p.Longitude, date.Year(), date.Month(), date.Day())
	return checkSunrise(rise, date)
}

func (NOAA) Elevation(p geo.GeoPoint, t time.Time) float64 {
	return sunrise.Elevation(p.Latitude, p.Longitude, t)
}
