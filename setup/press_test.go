package setup

import (
	"testing"
	"time"

	"halo/internal/testutil"
)

func TestClassifyShortPress(t *testing.T) {
	clk := testutil.NewClock()
	release := clk.Now().Add(300 * time.Millisecond)
	pressed := func() bool { return clk.Now().Before(release) }

	if got := Classify(pressed, LongPressAfter, clk); got != PressShort {
		t.Fatalf("300ms hold classified as %d, want short", got)
	}
	if clk.Now().Before(release) {
		t.Fatal("Classify returned before the button was released")
	}
}

func TestClassifyLongPress(t *testing.T) {
	clk := testutil.NewClock()
	release := clk.Now().Add(1500 * time.Millisecond)
	pressed := func() bool { return clk.Now().Before(release) }

	if got := Classify(pressed, LongPressAfter, clk); got != PressLong {
		t.Fatalf("1500ms hold classified as %d, want long", got)
	}
}

func TestClassifyThresholdIsInclusive(t *testing.T) {
	clk := testutil.NewClock()
	release := clk.Now().Add(LongPressAfter)
	pressed := func() bool { return clk.Now().Before(release) }

	if got := Classify(pressed, LongPressAfter, clk); got != PressLong {
		t.Fatalf("threshold-length hold classified as %d, want long", got)
	}
}

func TestDebounceRejectsContactBounce(t *testing.T) {
	clk := testutil.NewClock()
	release := clk.Now().Add(20 * time.Millisecond)
	pressed := func() bool { return clk.Now().Before(release) }

	if Debounce(pressed, debounceHold, clk) {
		t.Fatal("20ms bounce accepted as a press")
	}
}

func TestDebounceAcceptsPressAndWaitsRelease(t *testing.T) {
	clk := testutil.NewClock()
	release := clk.Now().Add(200 * time.Millisecond)
	pressed := func() bool { return clk.Now().Before(release) }

	if !Debounce(pressed, debounceHold, clk) {
		t.Fatal("200ms press rejected")
	}
	if pressed() {
		t.Fatal("Debounce returned while the button was still held")
	}
}
