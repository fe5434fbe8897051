// Package clock holds the wall-clock value type shared by the rendering
// engine, the configuration screens and the RTC boundary.
package clock

import "time"

// Moment is an immutable snapshot of calendar date and time of day.
// Weekday runs 0=Sunday through 6=Saturday, matching time.Weekday.
type Moment struct {
	Year    int
	Month   int // 1..12
	Day     int // 1..31
	Hour    int // 0..23
	Minute  int // 0..59
	Second  int // 0..59
	Weekday int // 0..6
}

// FromTime converts a time.Time to a Moment, dropping sub-second precision.
func FromTime(t time.Time) Moment {
	return Moment{
		Year:    t.Year(),
		Month:   int(t.Month()),
		Day:     t.Day(),
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Second:  t.Second(),
		Weekday: int(t.Weekday()),
	}
}

// Time converts the Moment back to a time.Time in UTC.
func (m Moment) Time() time.Time {
	return time.Date(m.Year, time.Month(m.Month), m.Day, m.Hour, m.Minute, m.Second, 0, time.UTC)
}

// WithHour returns a copy with the hour replaced (wrapping at 24) and the
// seconds reset to zero. All other fields carry over unchanged.
func (m Moment) WithHour(hour int) Moment {
	m.Hour = wrap(hour, 24)
	m.Second = 0
	return m
}

// WithMinute returns a copy with the minute replaced (wrapping at 60) and
// the seconds reset to zero.
func (m Moment) WithMinute(minute int) Moment {
	m.Minute = wrap(minute, 60)
	m.Second = 0
	return m
}

// TwelveHour maps a 24-hour value onto the 12-hour dial: hours below 12
// pass through, 12..23 map to 0..11.
func TwelveHour(hour int) int {
	if hour < 12 {
		return hour
	}
	return hour - 12
}

func wrap(v, mod int) int {
	v %= mod
	if v < 0 {
		v += mod
	}
	return v
}
