package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockTime is a time of day in minutes since midnight, 0–1439.
// Tariff decisions never consult the calendar date, only this value.
type ClockTime int

// MinutesPerDay is the number of ClockTime values in a day.
const MinutesPerDay = 24 * 60

// ParseClockTime parses an "HH:MM" string (minute precision, 24-hour
// clock) into a ClockTime. Returns ErrInvalidTimeWindow for anything
// malformed or out of [00:00, 23:59].
func ParseClockTime(s string) (ClockTime, error) {
	hh, mm, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeWindow, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeWindow, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeWindow, s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidTimeWindow, s)
	}
	return ClockTime(h*60 + m), nil
}

// ClockTimeOf projects an instant to its time of day in the instant's
// own location.
func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime(t.Hour()*60 + t.Minute())
}

// Valid reports whether t is inside a single day.
func (t ClockTime) Valid() bool { return t >= 0 && t < MinutesPerDay }

// String renders t as zero-padded "HH:MM".
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// NightWindow is the configured time-of-day interval during which the
// flat nocturnal rate applies. The window may cross midnight.
type NightWindow struct {
	Start ClockTime
	End   ClockTime
}

// Contains reports whether the time of day t falls inside the window.
//
//   - Start < End: plain interval, Start <= t < End.
//   - Start > End: the window crosses midnight, t >= Start or t < End.
//   - Start == End: no night window; always false.
func (w NightWindow) Contains(t ClockTime) bool {
	switch {
	case w.Start == w.End:
		return false
	case w.Start < w.End:
		return t >= w.Start && t < w.End
	default:
		return t >= w.Start || t < w.End
	}
}

// Valid reports whether both bounds are inside a single day.
func (w NightWindow) Valid() bool { return w.Start.Valid() && w.End.Valid() }
