package sighting

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrTargetAltitudeUnreachable is matched by every *UnreachableError.
	ErrTargetAltitudeUnreachable = errors.New("target altitude unreachable")
	// ErrTimeZoneLookup is matched by every *TimeZoneError.
	ErrTimeZoneLookup = errors.New("time zone lookup failed")
	// ErrInvalidSearch is returned for a non-positive step or a window shorter than one step.
	ErrInvalidSearch = errors.New("invalid search options")
)

// UnreachableError represents a search that exhausted its window without the
// sun reaching the target elevation
type UnreachableError struct {
	Target       float64
	MaxElevation float64
	Steps        int
	Window       time.Duration
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("sun never reached %.4f° within %s after sunrise (%d steps, max %.4f°)",
		e.Target, e.Window, e.Steps, e.MaxElevation)
}

func (e *UnreachableError) Is(target error) bool {
	return target == ErrTargetAltitudeUnreachable
}

// TimeZoneError represents a failure to resolve a named time zone
type TimeZoneError struct {
	Name string
	Err  error
}

func (e *TimeZoneError) Error() string {
	return fmt.Sprintf("time zone lookup for %q failed: %v", e.Name, e.Err)
}

func (e *TimeZoneError) Is(target error) bool {
	return target == ErrTimeZoneLookup
}

func (e *TimeZoneError) Unwrap() error {
	return e.Err
}
