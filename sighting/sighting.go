// Package sighting predicts when sunlight first clears a distant peak's
// silhouette as seen from a fixed observer.
//
// The pipeline is: great-circle distance to the summit, the summit's
// elevation angle above the observer's horizontal plane, then a bounded scan
// forward from sunrise until the sun stands at least that high.
package sighting

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/devskill-org/peaklight/geo"
	"github.com/devskill-org/peaklight/sun"
	"github.com/devskill-org/peaklight/utils"
)

// Result is everything the report needs about one computed session
type Result struct {
	Region        string
	Peak          Peak
	Date          time.Time
	DistanceKm    float64
	AltitudeAngle float64 // elevation of the summit, degrees
	Model         string
	Search        TimeSearchResult
	Reference     *time.Time // recorded sighting, if any
}

// ReferenceDelta returns the predicted crossing minus the recorded sighting.
func (r *Result) ReferenceDelta() (time.Duration, bool) {
	if r.Reference == nil {
		return 0, false
	}
	return r.Search.Target.Sub(*r.Reference), true
}

// Compute runs the full pipeline for cfg with the solar provider p.
func Compute(cfg *Config, p sun.Provider, logger zerolog.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	obs, err := cfg.ObservingContext()
	if err != nil {
		return nil, err
	}

	distanceKm := geo.Distance(cfg.Observer, cfg.Peak.Summit)
	logger.Debug().
		Str("peak", cfg.Peak.Name).
		Float64("distance_km", distanceKm).
		Msg("computed great-circle distance")

	angle, err := geo.AltitudeAngle(cfg.Peak.Height(), distanceKm*1000, cfg.Observer.Altitude)
	if err != nil {
		return nil, fmt.Errorf("failed to compute altitude angle of %s: %w", cfg.Peak.Name, err)
	}
	logger.Debug().Float64("altitude_angle", angle).Msg("computed altitude angle")

	search, err := FindTimeAtAltitude(p, obs, angle, cfg.SearchOptions())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name(), err)
	}
	logger.Debug().
		Str("model", p.Name()).
		Time("sunrise", search.Sunrise).
		Time("target", search.Target).
		Float64("achieved", search.Achieved).
		Int("steps", search.Steps).
		Msg("found target crossing")

	res := &Result{
		Region:        cfg.Region,
		Peak:          cfg.Peak,
		Date:          obs.Date,
		DistanceKm:    distanceKm,
		AltitudeAngle: angle,
		Model:         p.Name(),
		Search:        search,
	}

	if cfg.ReferenceObservation != "" {
		ref, err := utils.ParseClock(obs.Date, cfg.ReferenceObservation)
		if err != nil {
			return nil, fmt.Errorf("invalid reference_observation: %w", err)
		}
		res.Reference = &ref
	}

	return res, nil
}
