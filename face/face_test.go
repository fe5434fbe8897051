package face

import (
	"testing"
	"time"

	"halo/clock"
	"halo/internal/testutil"
)

func mom(h, m, s int) clock.Moment {
	return clock.Moment{Year: 2024, Month: 6, Day: 10, Hour: h, Minute: m, Second: s, Weekday: 1}
}

type bench struct {
	hours   *testutil.Ring
	minutes *testutil.Ring
	r       *Renderer
}

func newBench(now func() time.Time) bench {
	h := testutil.NewRing(24)
	m := testutil.NewRing(60)
	return bench{hours: h, minutes: m, r: NewRenderer(h, m, now)}
}

func sameRing(t *testing.T, label string, got, want *testutil.Ring) {
	t.Helper()
	for i := range want.Shown {
		if got.Shown[i] != want.Shown[i] {
			t.Fatalf("%s pixel %d = %v, want %v", label, i, got.Shown[i], want.Shown[i])
		}
	}
}

func TestUpdateMatchesRedraw(t *testing.T) {
	pairs := []struct {
		name      string
		prev, cur clock.Moment
	}{
		{"second step", mom(3, 5, 10), mom(3, 5, 11)},
		{"minute rollover", mom(3, 5, 59), mom(3, 6, 0)},
		{"hour rollover", mom(9, 59, 59), mom(10, 0, 0)},
		{"day rollover", mom(23, 59, 59), mom(0, 0, 0)},
		{"noon crossing", mom(11, 59, 59), mom(12, 0, 0)},
		{"forward jump", mom(10, 59, 59), mom(11, 0, 0)},
		{"second moved back", mom(9, 30, 40), mom(9, 30, 20)},
		{"time set backward", mom(14, 10, 5), mom(2, 45, 30)},
		{"no change", mom(5, 6, 7), mom(5, 6, 7)},
	}
	modes := []Mode{ModeAnalog, ModeArcGrowth, ModePastelRotate}

	for _, mode := range modes {
		for _, p := range pairs {
			clk := testutil.NewClock()

			inc := newBench(clk.Now)
			if err := inc.r.Redraw(mode, p.prev); err != nil {
				t.Fatal(err)
			}
			if err := inc.r.Update(mode, p.prev, p.cur); err != nil {
				t.Fatal(err)
			}

			full := newBench(clk.Now)
			if err := full.r.Redraw(mode, p.prev); err != nil {
				t.Fatal(err)
			}
			if err := full.r.Redraw(mode, p.cur); err != nil {
				t.Fatal(err)
			}

			label := mode.Name() + " " + p.name
			sameRing(t, label+" hours", inc.hours, full.hours)
			sameRing(t, label+" minutes", inc.minutes, full.minutes)
		}
	}
}

func TestAnalogSceneAtThreeOhFive(t *testing.T) {
	b := newBench(testutil.NewClock().Now)
	if err := b.r.Redraw(ModeAnalog, mom(3, 5, 10)); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 24; i++ {
		want := ringOff
		if i == 6 {
			want = analogHour
		}
		if b.hours.Shown[i] != want {
			t.Fatalf("hours pixel %d = %v, want %v", i, b.hours.Shown[i], want)
		}
	}
	for i := 0; i < 60; i++ {
		want := ringOff
		switch {
		case i == 10:
			want = analogSecond
		case i == 5:
			want = analogMinute
		case i%5 == 0:
			want = analogTick
		}
		if b.minutes.Shown[i] != want {
			t.Fatalf("minutes pixel %d = %v, want %v", i, b.minutes.Shown[i], want)
		}
	}
}

func TestAnalogSecondStepLeavesHoursRingAlone(t *testing.T) {
	b := newBench(testutil.NewClock().Now)
	if err := b.r.Redraw(ModeAnalog, mom(3, 5, 10)); err != nil {
		t.Fatal(err)
	}
	shows := b.hours.Shows
	if err := b.r.Update(ModeAnalog, mom(3, 5, 10), mom(3, 5, 11)); err != nil {
		t.Fatal(err)
	}
	if b.hours.Shows != shows {
		t.Fatalf("hours ring flushed %d extra times on a second step", b.hours.Shows-shows)
	}
}

func TestArcHoursRingAtMidnightAndNoon(t *testing.T) {
	b := newBench(testutil.NewClock().Now)

	if err := b.r.Redraw(ModeArcGrowth, mom(0, 30, 15)); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 24; i++ {
		if b.hours.Shown[i] != ringOff {
			t.Fatalf("hour 0: pixel %d lit: %v", i, b.hours.Shown[i])
		}
	}

	if err := b.r.Redraw(ModeArcGrowth, mom(12, 0, 0)); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 24; i++ {
		if b.hours.Shown[i] != arcAfterNoon {
			t.Fatalf("hour 12: pixel %d = %v, want %v", i, b.hours.Shown[i], arcAfterNoon)
		}
	}
}

func TestArcMinuteAndSecondShareTheRing(t *testing.T) {
	b := newBench(testutil.NewClock().Now)
	// minute=20, second=10: the second arc overwrites the shared prefix,
	// the minute arc owns 11..20.
	if err := b.r.Redraw(ModeArcGrowth, mom(9, 20, 10)); err != nil {
		t.Fatal(err)
	}
	for i := 0; i <= 10; i++ {
		if b.minutes.Shown[i] != arcBeforeNoon {
			t.Fatalf("pixel %d = %v, want second arc %v", i, b.minutes.Shown[i], arcBeforeNoon)
		}
	}
	for i := 11; i <= 20; i++ {
		if b.minutes.Shown[i] != arcMinute {
			t.Fatalf("pixel %d = %v, want minute arc %v", i, b.minutes.Shown[i], arcMinute)
		}
	}
	for i := 21; i < 60; i++ {
		if b.minutes.Shown[i] != ringOff {
			t.Fatalf("pixel %d lit past the arcs: %v", i, b.minutes.Shown[i])
		}
	}
}

func TestPastelMarkerRestore(t *testing.T) {
	clk := testutil.NewClock()
	b := newBench(clk.Now)
	at := mom(3, 15, 0)
	if err := b.r.Redraw(ModePastelRotate, at); err != nil {
		t.Fatal(err)
	}

	if b.hours.Shown[6] != ringOff || b.minutes.Shown[15] != ringOff {
		t.Fatalf("markers not dark after redraw: %v %v", b.hours.Shown[6], b.minutes.Shown[15])
	}

	// First blink fires: both markers must come back as the exact gradient
	// color a redraw would have put there.
	clk.Advance(pastelBlink)
	if err := b.r.Update(ModePastelRotate, at, at); err != nil {
		t.Fatal(err)
	}
	if want := gradient(24, 6, 0); b.hours.Shown[6] != want {
		t.Fatalf("hour marker restored to %v, want %v", b.hours.Shown[6], want)
	}
	if want := gradient(60, 15, 0); b.minutes.Shown[15] != want {
		t.Fatalf("minute marker restored to %v, want %v", b.minutes.Shown[15], want)
	}
}

func TestPastelMinutesRingRotates(t *testing.T) {
	clk := testutil.NewClock()
	b := newBench(clk.Now)
	at := mom(3, 15, 0)
	if err := b.r.Redraw(ModePastelRotate, at); err != nil {
		t.Fatal(err)
	}

	clk.Advance(pastelSpinMinutes)
	if err := b.r.Update(ModePastelRotate, at, at); err != nil {
		t.Fatal(err)
	}

	// The spin deadline fired once, the hours cadence did not, and the
	// blink deadline fired so the markers show their cached colors.
	for i := 0; i < 60; i++ {
		want := gradient(60, i, 1)
		if b.minutes.Shown[i] != want {
			t.Fatalf("minutes pixel %d = %v, want phase-1 %v", i, b.minutes.Shown[i], want)
		}
	}
	for i := 0; i < 24; i++ {
		want := gradient(24, i, 0)
		if b.hours.Shown[i] != want {
			t.Fatalf("hours pixel %d = %v, want phase-0 %v", i, b.hours.Shown[i], want)
		}
	}
}

func TestPastelMarkerMove(t *testing.T) {
	clk := testutil.NewClock()
	b := newBench(clk.Now)
	if err := b.r.Redraw(ModePastelRotate, mom(3, 15, 59)); err != nil {
		t.Fatal(err)
	}

	// Minute rolls over before any deadline fires: the vacated marker
	// position gets its gradient color back, the new one goes dark.
	if err := b.r.Update(ModePastelRotate, mom(3, 15, 59), mom(3, 16, 0)); err != nil {
		t.Fatal(err)
	}
	if want := gradient(60, 15, 0); b.minutes.Shown[15] != want {
		t.Fatalf("vacated marker = %v, want %v", b.minutes.Shown[15], want)
	}
	if b.minutes.Shown[16] != ringOff {
		t.Fatalf("new marker = %v, want dark", b.minutes.Shown[16])
	}
}

func TestModeSwitchForcesRedraw(t *testing.T) {
	b := newBench(testutil.NewClock().Now)
	if err := b.r.Redraw(ModeAnalog, mom(12, 0, 30)); err != nil {
		t.Fatal(err)
	}
	// Update under a different mode must behave like that mode's redraw.
	if err := b.r.Update(ModeArcGrowth, mom(12, 0, 29), mom(12, 0, 30)); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 24; i++ {
		if b.hours.Shown[i] != arcAfterNoon {
			t.Fatalf("pixel %d = %v after mode switch, want %v", i, b.hours.Shown[i], arcAfterNoon)
		}
	}
}

func TestModeNextWraps(t *testing.T) {
	if ModeAnalog.Next() != ModeArcGrowth {
		t.Fatal("Analog should advance to ArcGrowth")
	}
	if ModePastelRotate.Next() != ModeAnalog {
		t.Fatal("last mode should wrap to the first")
	}
}

func TestModeNamesAreFixedWidth(t *testing.T) {
	w := len(ModeAnalog.Name())
	for _, m := range []Mode{ModeAnalog, ModeArcGrowth, ModePastelRotate} {
		if len(m.Name()) != w {
			t.Fatalf("Name %q has width %d, want %d", m.Name(), len(m.Name()), w)
		}
	}
}
