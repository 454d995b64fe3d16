package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelcosta/parking-backend/internal/domain"
)

func mustClock(t *testing.T, s string) domain.ClockTime {
	t.Helper()
	ct, err := domain.ParseClockTime(s)
	require.NoError(t, err)
	return ct
}

func TestParseClockTime_OK(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"08:30", 510},
		{"23:59", 1439},
		{" 20:00 ", 1200},
		{"6:05", 365}, // single-digit hour tolerated
	}
	for _, tc := range cases {
		got, err := domain.ParseClockTime(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, domain.ClockTime(tc.want), got, "input %q", tc.in)
	}
}

func TestParseClockTime_Invalid(t *testing.T) {
	cases := []string{"", "24:00", "12:60", "12", "ab:cd", "-1:00", "12:-5"}
	for _, in := range cases {
		_, err := domain.ParseClockTime(in)
		assert.ErrorIs(t, err, domain.ErrInvalidTimeWindow, "input %q", in)
	}
}

func TestClockTime_String(t *testing.T) {
	assert.Equal(t, "20:00", mustClock(t, "20:00").String())
	assert.Equal(t, "06:05", mustClock(t, "6:05").String())
	assert.Equal(t, "00:00", domain.ClockTime(0).String())
}

func TestNightWindow_CrossesMidnight(t *testing.T) {
	w := domain.NightWindow{Start: mustClock(t, "20:00"), End: mustClock(t, "06:00")}

	cases := []struct {
		at   string
		want bool
	}{
		{"23:00", true},
		{"05:59", true},
		{"06:00", false},
		{"19:59", false},
		{"20:00", true},
		{"00:00", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, w.Contains(mustClock(t, tc.at)), "at %s", tc.at)
	}
}

func TestNightWindow_NonWrapping(t *testing.T) {
	w := domain.NightWindow{Start: mustClock(t, "13:00"), End: mustClock(t, "18:00")}

	assert.True(t, w.Contains(mustClock(t, "13:00")))
	assert.True(t, w.Contains(mustClock(t, "17:59")))
	assert.False(t, w.Contains(mustClock(t, "18:00")))
	assert.False(t, w.Contains(mustClock(t, "12:59")))
}

// Equal bounds mean "no night window": never inside.
func TestNightWindow_EqualBounds(t *testing.T) {
	w := domain.NightWindow{Start: mustClock(t, "22:00"), End: mustClock(t, "22:00")}

	for minute := 0; minute < domain.MinutesPerDay; minute += 60 {
		assert.False(t, w.Contains(domain.ClockTime(minute)), "minute %d", minute)
	}
	assert.False(t, w.Contains(mustClock(t, "22:00")))
}

func TestClockTimeOf(t *testing.T) {
	at := time.Date(2026, 3, 14, 22, 45, 59, 0, time.UTC)
	assert.Equal(t, domain.ClockTime(22*60+45), domain.ClockTimeOf(at))
}
