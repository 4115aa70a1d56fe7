package sighting

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/devskill-org/peaklight/geo"
	"github.com/devskill-org/peaklight/sun"
	"github.com/devskill-org/peaklight/utils"
)

// Peak is the distant summit whose silhouette the sun has to clear
type Peak struct {
	Name   string       `json:"name"`
	Summit geo.GeoPoint `json:"summit"` // Summit position, altitude is the peak height in meters
}

// Height returns the summit's height above sea level in meters
func (p Peak) Height() float64 {
	return p.Summit.Altitude
}

// Config represents one observing session
type Config struct {
	// Observing location
	Observer geo.GeoPoint `json:"observer"`  // Observer position, altitude in meters
	Region   string       `json:"region"`    // Region name, informational
	TimeZone string       `json:"time_zone"` // IANA time zone of the observer (e.g., "America/Vancouver")
	Date     string       `json:"date"`      // Civil date, YYYY-MM-DD

	// Target
	Peak Peak `json:"peak"`

	// Search settings
	SearchStep   time.Duration `json:"search_step"`   // Time advanced per elevation sample
	SearchWindow time.Duration `json:"search_window"` // Maximum time scanned after sunrise

	// Solar model settings
	SolarModel      string `json:"solar_model"`       // Solar model: suncalc, noaa
	Refraction      bool   `json:"refraction"`        // Apply atmospheric refraction to solar elevation
	CrossCheckModel string `json:"cross_check_model"` // Second model reported alongside (empty = disabled)

	// Recorded sighting for comparison, HH:MM:SS local (empty = none)
	ReferenceObservation string `json:"reference_observation"`

	// Output settings
	Color     string `json:"color"`      // ANSI color: auto, always, never
	LogLevel  string `json:"log_level"`  // Log level: debug, info, warn, error
	LogFormat string `json:"log_format"` // Log format: text, json
}

// DefaultConfig returns the West Vancouver / Mount Baker session of 2024-11-11
func DefaultConfig() *Config {
	return &Config{
		Observer: geo.GeoPoint{
			Latitude:  49.33100,
			Longitude: -123.26207,
			Altitude:  0,
		},
		Region:   "CANADA",
		TimeZone: "America/Vancouver",
		Date:     "2024-11-11",
		Peak: Peak{
			Name:   "Mount Baker",
			Summit: geo.GeoPoint{
				Latitude:  48.776403,
				Longitude: -121.819222,
				Altitude:  3286,
			},
		},
		SearchStep:           DefaultSearchOptions().Step,
		SearchWindow:         DefaultSearchOptions().Window,
		SolarModel:           sun.ModelSunCalc,
		Refraction:           true,
		CrossCheckModel:      sun.ModelNOAA,
		ReferenceObservation: "07:32:41",
		Color:                "auto",
		LogLevel:             "info",
		LogFormat:            "text",
	}
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if err := c.Observer.Validate(); err != nil {
		return fmt.Errorf("observer: %w", err)
	}

	if err := c.Peak.Summit.Validate(); err != nil {
		return fmt.Errorf("peak summit: %w", err)
	}

	if h := c.Peak.Height(); math.IsNaN(h) || math.IsInf(h, 0) {
		return fmt.Errorf("peak height must be finite, got: %f", h)
	}

	if c.TimeZone == "" {
		return fmt.Errorf("time_zone cannot be empty")
	}

	if _, err := time.Parse(time.DateOnly, c.Date); err != nil {
		return fmt.Errorf("invalid date %q, must be YYYY-MM-DD: %w", c.Date, err)
	}

	if err := c.SearchOptions().validate(); err != nil {
		return err
	}

	if _, err := sun.New(c.SolarModel); err != nil {
		return fmt.Errorf("invalid solar_model: %w", err)
	}

	if c.CrossCheckModel != "" {
		if _, err := sun.New(c.CrossCheckModel); err != nil {
			return fmt.Errorf("invalid cross_check_model: %w", err)
		}
	}

	if c.ReferenceObservation != "" {
		if _, err := utils.ParseClock(time.Time{}, c.ReferenceObservation); err != nil {
			return fmt.Errorf("invalid reference_observation: %w", err)
		}
	}

	validColors := map[string]bool{
		"auto":   true,
		"always": true,
		"never":  true,
	}
	if !validColors[c.Color] {
		return fmt.Errorf("invalid color: %s, must be one of: auto, always, never", c.Color)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level: %s, must be one of: debug, info, warn, error", c.LogLevel)
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[c.LogFormat] {
		return fmt.Errorf("invalid log_format: %s, must be one of: text, json", c.LogFormat)
	}

	return nil
}

// LoadLocation resolves the configured time zone
func (c *Config) LoadLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, &TimeZoneError{Name: c.TimeZone, Err: err}
	}
	return loc, nil
}

// ObservingContext resolves the configured observer, date and time zone
func (c *Config) ObservingContext() (Observer, error) {
	loc, err := c.LoadLocation()
	if err != nil {
		return Observer{}, err
	}

	date, err := time.ParseInLocation(time.DateOnly, c.Date, loc)
	if err != nil {
		return Observer{}, fmt.Errorf("invalid date %q: %w", c.Date, err)
	}

	return Observer{Point: c.Observer, Date: date, Location: loc}, nil
}

// SearchOptions returns the configured search bounds
func (c *Config) SearchOptions() SearchOptions {
	return SearchOptions{Step: c.SearchStep, Window: c.SearchWindow}
}

// NewProvider builds the solar provider for model, applying refraction when
// the config asks for it
func (c *Config) NewProvider(model string) (sun.Provider, error) {
	p, err := sun.New(model)
	if err != nil {
		return nil, err
	}
	if c.Refraction {
		p = sun.WithRefraction(p)
	}
	return p, nil
}

// MarshalJSON implements custom JSON marshaling to handle durations
func (c *Config) MarshalJSON() ([]byte, error) {
	type Alias Config
	return json.Marshal(&struct {
		*Alias
		SearchStep   string `json:"search_step"`
		SearchWindow string `json:"search_window"`
	}{
		Alias:        (*Alias)(c),
		SearchStep:   c.SearchStep.String(),
		SearchWindow: c.SearchWindow.String(),
	})
}

// String returns a string representation of the config
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}
