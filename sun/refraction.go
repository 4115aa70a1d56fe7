package sun

import (
	"math"
	"time"

	"github.com/devskill-org/peaklight/geo"
)

// Refraction returns the atmospheric refraction correction in degrees for a
// geometric elevation, using the piecewise approximation from the NOAA solar
// calculator.
func Refraction(elevation float64) float64 {
	if elevation > 85 {
		return 0
	}

	te := math.Tan(elevation * math.Pi / 180)
	var arcsec float64
	switch {
	case elevation > 5:
		arcsec = 58.1/te - 0.07/math.Pow(te, 3) + 0.000086/math.Pow(te, 5)
	case elevation > -0.575:
		arcsec = 1735 + elevation*(-518.2+elevation*(103.4+elevation*(-12.79+elevation*0.711)))
	default:
		arcsec = -20.774 / te
	}

	return arcsec / 3600
}

type refracted struct {
	Provider
}

// WithRefraction wraps p so that Elevation reports the apparent elevation,
// geometric elevation plus Refraction. Sunrise is passed through unchanged;
// the libraries already apply the standard horizon correction.
func WithRefraction(p Provider) Provider {
	return refracted{Provider: p}
}

func (r refracted) Name() string {
	return r.Provider.Name() + "+refraction"
}

func (r refracted) Elevation(p geo.GeoPoint, t time.Time) float64 {
	e := r.Provider.Elevation(p, t)
	return e + Refraction(e)
}
