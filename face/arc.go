package face

import (
	"image/color"

	"halo/clock"
)

// ArcGrowth palette: the seconds arc carries the half-day color, the
// minutes arc a combinable green.
var (
	arcBeforeNoon = color.RGBA{B: 25, A: 255}
	arcAfterNoon  = color.RGBA{R: 25, A: 255}
	arcMinute     = color.RGBA{G: 20, A: 255}
)

func arcHalfDayColor(hour int) color.RGBA {
	if hour < 12 {
		return arcBeforeNoon
	}
	return arcAfterNoon
}

// hourArcLen is the number of lit hours-ring pixels: hour 0 leaves the
// ring dark, hour 12 fills all 24 pixels, and the afternoon grows again
// from 2 pixels at 13:00.
func hourArcLen(hour int) int {
	if hour <= 12 {
		return 2 * hour
	}
	return 2 * (hour - 12)
}

// arcMinutePixel evaluates the minute range first and the second range
// after it, so on overlapping indexes the second arc's color wins.
func arcMinutePixel(t clock.Moment, i int) color.RGBA {
	c := ringOff
	if i <= t.Minute {
		c = arcMinute
	}
	if i <= t.Second {
		c = arcHalfDayColor(t.Hour)
	}
	return c
}

func (r *Renderer) arcRedraw(t clock.Moment) error {
	n := hourArcLen(t.Hour)
	half := arcHalfDayColor(t.Hour)
	for i := 0; i < r.hours.Len(); i++ {
		if i < n {
			r.hours.SetPixel(i, half)
		} else {
			r.hours.SetPixel(i, ringOff)
		}
	}
	if err := r.hours.Show(); err != nil {
		return err
	}
	for i := 0; i < r.minutes.Len(); i++ {
		r.minutes.SetPixel(i, arcMinutePixel(t, i))
	}
	return r.minutes.Show()
}

func (r *Renderer) arcUpdate(prev, cur clock.Moment) error {
	// Any change beyond the seconds reshapes both arcs; growing-arc
	// semantics make a full redraw the minimal correct update there.
	if prev.Hour != cur.Hour || prev.Minute != cur.Minute {
		return r.arcRedraw(cur)
	}
	switch {
	case cur.Second == prev.Second:
		return nil
	case cur.Second > prev.Second:
		half := arcHalfDayColor(cur.Hour)
		for i := prev.Second + 1; i <= cur.Second; i++ {
			r.minutes.SetPixel(i, half)
		}
		return r.minutes.Show()
	default:
		// Time went backward; the tail of the arc must shrink.
		return r.arcRedraw(cur)
	}
}
