// Package sun adapts third-party solar ephemeris libraries to the small
// surface the sighting search needs: sunrise for a civil date and the solar
// elevation at an arbitrary instant.
package sun

import (
	"errors"
	"fmt"
	"time"

	"github.com/devskill-org/peaklight/geo"
)

// Model names accepted by New.
const (
	ModelSunCalc = "suncalc"
	ModelNOAA    = "noaa"
)

var (
	// ErrUnknownModel is returned by New for an unsupported model name.
	ErrUnknownModel = errors.New("unknown solar model")
	// ErrNoSunrise is returned when the sun does not rise on the requested date.
	ErrNoSunrise = errors.New("no sunrise on date")
)

// Provider computes solar events and positions for an observer.
type Provider interface {
	// Name identifies the underlying model.
	Name() string
	// Sunrise returns the UTC instant of sunrise on the civil date of date,
	// interpreted in date's location.
	Sunrise(p geo.GeoPoint, date time.Time) (time.Time, error)
	// Elevation returns the sun's elevation above the horizon in degrees.
	Elevation(p geo.GeoPoint, t time.Time) float64
}

// New returns the provider registered under model.
func New(model string) (Provider, error) {
	switch model {
	case ModelSunCalc:
		return SunCalc{}, nil
	case ModelNOAA:
		return NOAA{}, nil
	default:
		return nil, fmt.Errorf("%w: %q, must be one of: %s, %s", ErrUnknownModel, model, ModelSunCalc, ModelNOAA)
	}
}

// checkSunrise rejects zero or out-of-date sunrise instants, which the
// libraries produce for polar day and night.
func checkSunrise(rise, date time.Time) (time.Time, error) {
	if rise.IsZero() {
		return time.Time{}, fmt.Errorf("%w %s", ErrNoSunrise, date.Format(time.DateOnly))
	}

	local := rise.In(date.Location())
	if local.Year() != date.Year() || local.Month() != date.Month() || local.Day() != date.Day() {
		return time.Time{}, fmt.Errorf("%w %s: computed sunrise falls on %s", ErrNoSunrise, date.Format(time.DateOnly), local.Format(time.DateOnly))
	}

	return rise.UTC(), nil
}

// localNoon anchors a civil date at midday so that libraries keyed on the
// nearest solar transit pick the intended day.
func localNoon(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, date.Location())
}
