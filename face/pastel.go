package face

import (
	"image/color"
	"time"

	"halo/clock"
)

// Gradient amplitude and the three animation cadences. The minutes ring
// rotates faster than the hours ring; the marker blink is faster still.
const (
	pastelAmp = 20

	pastelSpinMinutes = 400 * time.Millisecond
	pastelSpinHours   = time.Second
	pastelBlink       = 150 * time.Millisecond
)

// pastelState is the PastelRotate strategy's memory: rotation phases, the
// three re-armed deadlines, the blink state, and the gradient colors hidden
// under the two markers so restoring them needs no recomputation.
type pastelState struct {
	spinHours   int
	spinMinutes int

	nextSpinHours   time.Time
	nextSpinMinutes time.Time
	nextBlink       time.Time
	dark            bool

	hourIdx     int
	minuteIdx   int
	hourCache   color.RGBA
	minuteCache color.RGBA
}

// gradient is the pastel wheel for a ring of n pixels: each third of the
// ring ramps one channel down while the next ramps up, shifted by the
// rotation phase.
func gradient(n, i, phase int) color.RGBA {
	seg := n / 3
	pos := (i + phase) % n
	rise := uint8(pos % seg * pastelAmp / seg)
	fall := pastelAmp - rise
	switch pos / seg {
	case 0:
		return color.RGBA{R: fall, G: rise, A: 255}
	case 1:
		return color.RGBA{G: fall, B: rise, A: 255}
	default:
		return color.RGBA{B: fall, R: rise, A: 255}
	}
}

func markerColor(cache color.RGBA, dark bool) color.RGBA {
	if dark {
		return ringOff
	}
	return cache
}

func (r *Renderer) pastelRedraw(t clock.Moment, now time.Time) error {
	r.pastel = pastelState{
		nextSpinHours:   now.Add(pastelSpinHours),
		nextSpinMinutes: now.Add(pastelSpinMinutes),
		nextBlink:       now.Add(pastelBlink),
		dark:            true,
		hourIdx:         hourPixel(t.Hour),
		minuteIdx:       t.Minute,
	}
	if err := r.pastelPaintHours(); err != nil {
		return err
	}
	return r.pastelPaintMinutes()
}

// pastelPaintHours repaints the whole hours ring for the current rotation
// phase, refreshes the marker cache and reapplies the marker.
func (r *Renderer) pastelPaintHours() error {
	st := &r.pastel
	n := r.hours.Len()
	for i := 0; i < n; i++ {
		r.hours.SetPixel(i, gradient(n, i, st.spinHours))
	}
	st.hourCache = gradient(n, st.hourIdx, st.spinHours)
	r.hours.SetPixel(st.hourIdx, markerColor(st.hourCache, st.dark))
	return r.hours.Show()
}

func (r *Renderer) pastelPaintMinutes() error {
	st := &r.pastel
	n := r.minutes.Len()
	for i := 0; i < n; i++ {
		r.minutes.SetPixel(i, gradient(n, i, st.spinMinutes))
	}
	st.minuteCache = gradient(n, st.minuteIdx, st.spinMinutes)
	r.minutes.SetPixel(st.minuteIdx, markerColor(st.minuteCache, st.dark))
	return r.minutes.Show()
}

func (r *Renderer) pastelUpdate(cur clock.Moment, now time.Time) error {
	st := &r.pastel
	showHours, showMinutes := false, false

	if hi := hourPixel(cur.Hour); hi != st.hourIdx {
		r.hours.SetPixel(st.hourIdx, st.hourCache)
		st.hourIdx = hi
		st.hourCache = gradient(r.hours.Len(), hi, st.spinHours)
		r.hours.SetPixel(hi, markerColor(st.hourCache, st.dark))
		showHours = true
	}
	if mi := cur.Minute; mi != st.minuteIdx {
		r.minutes.SetPixel(st.minuteIdx, st.minuteCache)
		st.minuteIdx = mi
		st.minuteCache = gradient(r.minutes.Len(), mi, st.spinMinutes)
		r.minutes.SetPixel(mi, markerColor(st.minuteCache, st.dark))
		showMinutes = true
	}

	if !now.Before(st.nextSpinHours) {
		st.spinHours = (st.spinHours + 1) % r.hours.Len()
		st.nextSpinHours = now.Add(pastelSpinHours)
		if err := r.pastelPaintHours(); err != nil {
			return err
		}
		showHours = false
	}
	if !now.Before(st.nextSpinMinutes) {
		st.spinMinutes = (st.spinMinutes + 1) % r.minutes.Len()
		st.nextSpinMinutes = now.Add(pastelSpinMinutes)
		if err := r.pastelPaintMinutes(); err != nil {
			return err
		}
		showMinutes = false
	}
	if !now.Before(st.nextBlink) {
		st.dark = !st.dark
		st.nextBlink = now.Add(pastelBlink)
		r.hours.SetPixel(st.hourIdx, markerColor(st.hourCache, st.dark))
		r.minutes.SetPixel(st.minuteIdx, markerColor(st.minuteCache, st.dark))
		showHours, showMinutes = true, true
	}

	if showHours {
		if err := r.hours.Show(); err != nil {
			return err
		}
	}
	if showMinutes {
		return r.minutes.Show()
	}
	return nil
}
