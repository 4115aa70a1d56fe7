package sighting

import (
	"fmt"
	"math"
	"time"

	"github.com/devskill-org/peaklight/geo"
	"github.com/devskill-org/peaklight/sun"
	"github.com/devskill-org/peaklight/utils"
)

// Observer anchors the search to a place and a civil date.
type Observer struct {
	Point    geo.GeoPoint
	Date     time.Time // any instant on the civil date in Location
	Location *time.Location
}

// SearchOptions bounds the sunrise-forward scan.
type SearchOptions struct {
	Step   time.Duration // time advanced between elevation samples
	Window time.Duration // maximum time scanned after sunrise
}

// Limits on SearchOptions. The scan never runs past one day after sunrise.
const (
	MinSearchStep   = time.Second
	MaxSearchWindow = 24 * time.Hour
)

// DefaultSearchOptions scans one day in one-minute steps.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Step:   time.Minute,
		Window: MaxSearchWindow,
	}
}

func (o SearchOptions) validate() error {
	if o.Step < MinSearchStep {
		return fmt.Errorf("%w: step must be at least %s, got: %s", ErrInvalidSearch, MinSearchStep, o.Step)
	}
	if o.Window > MaxSearchWindow {
		return fmt.Errorf("%w: window must be at most %s, got: %s", ErrInvalidSearch, MaxSearchWindow, o.Window)
	}
	if o.Window < o.Step {
		return fmt.Errorf("%w: window %s is shorter than step %s", ErrInvalidSearch, o.Window, o.Step)
	}
	return nil
}

// TimeSearchResult is the outcome of FindTimeAtAltitude. Times are in the
// observer's location.
type TimeSearchResult struct {
	Sunrise  time.Time
	Target   time.Time
	Achieved float64 // solar elevation at Target, degrees
	Steps    int     // number of steps advanced past sunrise
}

// FindTimeAtAltitude scans forward from sunrise in opts.Step increments and
// returns the first sample where the solar elevation is at least target
// degrees. Achieved may overshoot target by up to one step of solar motion.
//
// The scan stops after opts.Window; an *UnreachableError is returned if the
// target was never met.
func FindTimeAtAltitude(p sun.Provider, obs Observer, target float64, opts SearchOptions) (TimeSearchResult, error) {
	if err := opts.validate(); err != nil {
		return TimeSearchResult{}, err
	}

	loc := obs.Location
	if loc == nil {
		loc = obs.Date.Location()
	}
	date := utils.StartOfDay(obs.Date, loc)

	rise, err := p.Sunrise(obs.Point, date)
	if err != nil {
		return TimeSearchResult{}, fmt.Errorf("failed to compute sunrise: %w", err)
	}
	sunrise := rise.In(loc)

	maxSteps := int(opts.Window / opts.Step)
	maxElevation := math.Inf(-1)
	current := sunrise
	for step := 0; step <= maxSteps; step++ {
		elevation := p.Elevation(obs.Point, current)
		if elevation >= target {
			return TimeSearchResult{
				Sunrise:  sunrise,
				Target:   current,
				Achieved: elevation,
				Steps:    step,
			}, nil
		}
		maxElevation = math.Max(maxElevation, elevation)
		current = current.Add(opts.Step)
	}

	return TimeSearchResult{}, &UnreachableError{
		Target:       target,
		MaxElevation: maxElevation,
		Steps:        maxSteps,
		Window:       opts.Window,
	}
}
