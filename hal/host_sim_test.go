//go:build !tinygo

package hal

import (
	"testing"
	"time"

	"halo/clock"
)

func TestSimRTCSpeedFactor(t *testing.T) {
	now := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	r := newSimRTC(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 10, false, func() time.Time { return now }, nil)

	now = now.Add(6 * time.Second)
	m, err := r.ReadTime()
	if err != nil {
		t.Fatal(err)
	}
	// 6 real seconds at 10x are one simulated minute.
	if m.Hour != 0 || m.Minute != 1 || m.Second != 0 {
		t.Fatalf("moment = %02d:%02d:%02d, want 00:01:00", m.Hour, m.Minute, m.Second)
	}
}

func TestSimRTCRebaseOnWrite(t *testing.T) {
	now := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	r := newSimRTC(time.Time{}, 1, false, func() time.Time { return now }, nil)

	set := clock.Moment{Year: 2024, Month: 6, Day: 10, Hour: 9, Minute: 30, Weekday: 1}
	if err := r.SetTime(set); err != nil {
		t.Fatal(err)
	}
	now = now.Add(5 * time.Second)
	m, err := r.ReadTime()
	if err != nil {
		t.Fatal(err)
	}
	if m.Hour != 9 || m.Minute != 30 || m.Second != 5 {
		t.Fatalf("moment = %02d:%02d:%02d, want 09:30:05", m.Hour, m.Minute, m.Second)
	}
}

func TestSimRTCDetect(t *testing.T) {
	if err := newSimRTC(time.Time{}, 1, false, nil, nil).Detect(); err != nil {
		t.Fatalf("healthy probe failed: %v", err)
	}
	if err := newSimRTC(time.Time{}, 1, true, nil, nil).Detect(); err == nil {
		t.Fatal("configured probe failure not reported")
	}
}

func TestSimButtonsLatchedPress(t *testing.T) {
	now := time.Unix(0, 0)
	b := newSimButtons(func() time.Time { return now }, nil)

	if b.Pressed(ButtonSet) {
		t.Fatal("pressed before any press")
	}
	b.PressFor(ButtonSet, 100*time.Millisecond)
	if !b.Pressed(ButtonSet) {
		t.Fatal("latched press not visible")
	}
	now = now.Add(150 * time.Millisecond)
	if b.Pressed(ButtonSet) {
		t.Fatal("latched press did not expire")
	}
}

func TestSimButtonsHeldState(t *testing.T) {
	b := newSimButtons(time.Now, nil)
	b.Set(ButtonMode, true)
	if !b.Pressed(ButtonMode) {
		t.Fatal("held button not pressed")
	}
	b.Set(ButtonMode, false)
	if b.Pressed(ButtonMode) {
		t.Fatal("released button still pressed")
	}
}

func TestSimButtonsCountRisingEdges(t *testing.T) {
	var stats Stats
	b := newSimButtons(time.Now, &stats)
	b.Set(ButtonMode, true)
	b.Set(ButtonMode, true) // still the same physical press
	b.Set(ButtonMode, false)
	b.PressFor(ButtonSet, time.Millisecond)
	if got := stats.ModePresses.Load(); got != 1 {
		t.Fatalf("mode presses = %d, want 1", got)
	}
	if got := stats.SetPresses.Load(); got != 1 {
		t.Fatalf("set presses = %d, want 1", got)
	}
}
