package clock

import (
	"testing"
	"time"
)

func TestTwelveHour(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 0},
		{1, 1},
		{11, 11},
		{12, 0},
		{13, 1},
		{23, 11},
	}
	for _, c := range cases {
		if got := TwelveHour(c.in); got != c.want {
			t.Fatalf("TwelveHour(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestWithHourWrapsAndZeroesSeconds(t *testing.T) {
	m := Moment{Year: 2024, Month: 6, Day: 10, Hour: 23, Minute: 41, Second: 37, Weekday: 1}

	got := m.WithHour(m.Hour + 1)
	if got.Hour != 0 {
		t.Fatalf("hour after 23+1 = %d, want 0", got.Hour)
	}
	if got.Second != 0 {
		t.Fatalf("second = %d, want 0 after hour edit", got.Second)
	}
	if got.Minute != 41 || got.Day != 10 || got.Month != 6 || got.Year != 2024 || got.Weekday != 1 {
		t.Fatalf("unrelated fields changed: %+v", got)
	}
	if m.Second != 37 {
		t.Fatalf("receiver mutated: %+v", m)
	}
}

func TestWithMinuteWrapsAndZeroesSeconds(t *testing.T) {
	m := Moment{Hour: 9, Minute: 59, Second: 12}

	got := m.WithMinute(m.Minute + 1)
	if got.Minute != 0 {
		t.Fatalf("minute after 59+1 = %d, want 0", got.Minute)
	}
	if got.Second != 0 {
		t.Fatalf("second = %d, want 0 after minute edit", got.Second)
	}
	if got.Hour != 9 {
		t.Fatalf("hour changed to %d", got.Hour)
	}
}

func TestTimeRoundTrip(t *testing.T) {
	in := time.Date(2024, time.March, 9, 15, 4, 59, 0, time.UTC)

	m := FromTime(in)
	if m.Weekday != int(time.Saturday) {
		t.Fatalf("weekday = %d, want %d", m.Weekday, int(time.Saturday))
	}
	if got := m.Time(); !got.Equal(in) {
		t.Fatalf("round trip = %v, want %v", got, in)
	}
}

func TestNames(t *testing.T) {
	if got := WeekdayName(0); got != "Sunday" {
		t.Fatalf("WeekdayName(0) = %q", got)
	}
	if got := WeekdayName(6); got != "Saturday" {
		t.Fatalf("WeekdayName(6) = %q", got)
	}
	if got := WeekdayName(7); got != "?" {
		t.Fatalf("WeekdayName(7) = %q", got)
	}
	if got := MonthName(2); got != "February" {
		t.Fatalf("MonthName(2) = %q", got)
	}
	if got := MonthName(0); got != "?" {
		t.Fatalf("MonthName(0) = %q", got)
	}
}
