package sun

import (
	"math"
	"time"

	"github.com/sixdouglas/suncalc"

	"github.com/devskill-org/peaklight/geo"
)

// SunCalc is a Provider backed by github.com/sixdouglas/suncalc.
// Elevations are geometric; wrap with WithRefraction for apparent values.
type SunCalc struct{}

func (SunCalc) Name() string { return ModelSunCalc }

func (SunCalc) Sunrise(p geo.GeoPoint, date time.Time) (time.Time, error) {
	times := suncalc.GetTimes(localNoon(date), p.Latitude, p.Longitude)
	return checkSunrise(times["sunrise"].Value, date)
}

func (SunCalc) Elevation(p geo.GeoPoint, t time.Time) float64 {
	pos := suncalc.GetPosition(t, p.Latitude, p.Longitude)
	return pos.Altitude * 180 / math.Pi
}
