package sighting

import "github.com/devskill-org/peaklight/geo"

// Scenario is a recorded observing session: where the observer stood on a
// given date and when sunlight was seen clearing the peak.
type Scenario struct {
	Date     string
	Observer geo.GeoPoint
	Recorded string // HH:MM:SS local
}

// Scenarios returns the recorded Mount Baker sessions from the fall of 2024.
func Scenarios() []Scenario {
	return []Scenario{
		{Date: "2024-10-16", Observer: geo.GeoPoint{Latitude: 49.01631, Longitude: -123.04103}, Recorded: "07:51:38"},
		{Date: "2024-10-18", Observer: geo.GeoPoint{Latitude: 49.03736, Longitude: -123.05168}, Recorded: "07:54:48"},
		{Date: "2024-10-26", Observer: geo.GeoPoint{Latitude: 49.11949, Longitude: -123.09661}, Recorded: "08:07:43"},
		{Date: "2024-11-11", Observer: geo.GeoPoint{Latitude: 49.33100, Longitude: -123.26207}, Recorded: "07:32:41"},
	}
}

// Config returns a copy of base set up for this session.
func (s Scenario) Config(base *Config) *Config {
	cfg := *base
	cfg.Date = s.Date
	cfg.Observer = s.Observer
	cfg.ReferenceObservation = s.Recorded
	return &cfg
}
