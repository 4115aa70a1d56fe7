package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClockString(t *testing.T) {
	loc := time.FixedZone("PST", -8*3600)
	ts := time.Date(2024, time.November, 11, 15, 32, 41, 0, time.UTC)
	assert.Equal(t, "07:32:41", GetClockString(ts.In(loc)))
	assert.Equal(t, "15:32:41", GetClockString(ts))
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("PST", -8*3600)
	ts := time.Date(2024, time.November, 12, 3, 0, 0, 0, time.UTC) // 19:00 on the 11th in PST
	got := StartOfDay(ts, loc)
	assert.Equal(t, time.Date(2024, time.November, 11, 0, 0, 0, 0, loc), got)
}

func TestParseClock(t *testing.T) {
	loc := time.FixedZone("PST", -8*3600)
	day := time.Date(2024, time.November, 11, 0, 0, 0, 0, loc)

	got, err := ParseClock(day, "07:32:41")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.November, 11, 7, 32, 41, 0, loc), got)

	_, err = ParseClock(day, "7:32 AM")
	assert.Error(t, err)
}

func TestFormatSignedDuration(t *testing.T) {
	assert.Equal(t, "+43s", FormatSignedDuration(43*time.Second))
	assert.Equal(t, "-1m2s", FormatSignedDuration(-62*time.Second))
	assert.Equal(t, "+0s", FormatSignedDuration(200*time.Millisecond))
}
