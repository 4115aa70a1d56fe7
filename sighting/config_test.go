package sighting

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devskill-org/peaklight/geo"
	"github.com/devskill-org/peaklight/sun"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	require.NoError(t, config.Validate())
	assert.Equal(t, 49.33100, config.Observer.Latitude)
	assert.Equal(t, -123.26207, config.Observer.Longitude)
	assert.Equal(t, "America/Vancouver", config.TimeZone)
	assert.Equal(t, "2024-11-11", config.Date)
	assert.Equal(t, 3286.0, config.Peak.Height())
	assert.Equal(t, time.Minute, config.SearchStep)
	assert.Equal(t, 24*time.Hour, config.SearchWindow)
	assert.Equal(t, DefaultSearchOptions(), config.SearchOptions())
	assert.Equal(t, sun.ModelSunCalc, config.SolarModel)
	assert.True(t, config.Refraction)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:    "observer latitude out of range",
			modify:  func(c *Config) { c.Observer.Latitude = 91 },
			wantErr: "observer",
		},
		{
			name:    "summit longitude out of range",
			modify:  func(c *Config) { c.Peak.Summit.Longitude = -200 },
			wantErr: "peak summit",
		},
		{
			name:    "empty time zone",
			modify:  func(c *Config) { c.TimeZone = "" },
			wantErr: "time_zone cannot be empty",
		},
		{
			name:    "bad date",
			modify:  func(c *Config) { c.Date = "11/11/2024" },
			wantErr: "invalid date",
		},
		{
			name:    "zero step",
			modify:  func(c *Config) { c.SearchStep = 0 },
			wantErr: "step must be at least 1s",
		},
		{
			name:    "sub-second step",
			modify:  func(c *Config) { c.SearchStep = time.Nanosecond },
			wantErr: "step must be at least 1s",
		},
		{
			name:    "window longer than one day",
			modify:  func(c *Config) { c.SearchWindow = 48 * time.Hour },
			wantErr: "window must be at most 24h0m0s",
		},
		{
			name:    "non-finite peak height",
			modify:  func(c *Config) { c.Peak.Summit.Altitude = math.Inf(1) },
			wantErr: "peak height must be finite",
		},
		{
			name:    "window shorter than step",
			modify:  func(c *Config) { c.SearchWindow = 30 * time.Second },
			wantErr: "shorter than step",
		},
		{
			name:    "unknown solar model",
			modify:  func(c *Config) { c.SolarModel = "astral" },
			wantErr: "invalid solar_model",
		},
		{
			name:    "unknown cross-check model",
			modify:  func(c *Config) { c.CrossCheckModel = "vsop87" },
			wantErr: "invalid cross_check_model",
		},
		{
			name:    "bad reference observation",
			modify:  func(c *Config) { c.ReferenceObservation = "7:32 AM" },
			wantErr: "invalid reference_observation",
		},
		{
			name:    "bad color",
			modify:  func(c *Config) { c.Color = "rainbow" },
			wantErr: "invalid color",
		},
		{
			name:    "bad log level",
			modify:  func(c *Config) { c.LogLevel = "trace" },
			wantErr: "invalid log_level",
		},
		{
			name:    "bad log format",
			modify:  func(c *Config) { c.LogFormat = "xml" },
			wantErr: "invalid log_format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(config)
			err := config.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Validate_InvalidCoordinateKind(t *testing.T) {
	config := DefaultConfig()
	config.Observer.Longitude = 190
	assert.ErrorIs(t, config.Validate(), geo.ErrInvalidCoordinate)
}

func TestConfig_Validate_OptionalFields(t *testing.T) {
	config := DefaultConfig()
	config.CrossCheckModel = ""
	config.ReferenceObservation = ""
	assert.NoError(t, config.Validate())
}

func TestConfig_LoadLocation(t *testing.T) {
	config := DefaultConfig()
	loc, err := config.LoadLocation()
	require.NoError(t, err)
	assert.Equal(t, "America/Vancouver", loc.String())

	config.TimeZone = "Cascadia/Nowhere"
	_, err = config.LoadLocation()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeZoneLookup))

	var tzErr *TimeZoneError
	require.True(t, errors.As(err, &tzErr))
	assert.Equal(t, "Cascadia/Nowhere", tzErr.Name)
}

func TestConfig_ObservingContext(t *testing.T) {
	obs, err := DefaultConfig().ObservingContext()
	require.NoError(t, err)

	assert.Equal(t, "America/Vancouver", obs.Location.String())
	assert.Equal(t, time.Date(2024, time.November, 11, 0, 0, 0, 0, obs.Location), obs.Date)
	assert.Equal(t, 49.33100, obs.Point.Latitude)
}

func TestConfig_NewProvider(t *testing.T) {
	config := DefaultConfig()

	p, err := config.NewProvider(sun.ModelNOAA)
	require.NoError(t, err)
	assert.Equal(t, "noaa+refraction", p.Name())

	config.Refraction = false
	p, err = config.NewProvider(sun.ModelSunCalc)
	require.NoError(t, err)
	assert.Equal(t, "suncalc", p.Name())

	_, err = config.NewProvider("astral")
	assert.ErrorIs(t, err, sun.ErrUnknownModel)
}

func TestConfig_String(t *testing.T) {
	config := DefaultConfig()
	out := config.String()

	assert.True(t, strings.Contains(out, `"search_step": "1m0s"`), out)
	assert.True(t, strings.Contains(out, `"search_window": "24h0m0s"`), out)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "Mount Baker", decoded["peak"].(map[string]any)["name"])
}
