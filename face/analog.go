package face

import (
	"image/color"

	"halo/clock"
)

// Analog palette. Channel values stay at or below 30 to keep the strip
// within its brightness convention.
var (
	analogHour   = color.RGBA{R: 30, A: 255}
	analogMinute = color.RGBA{G: 30, A: 255}
	analogSecond = color.RGBA{B: 30, A: 255}
	analogTick   = color.RGBA{R: 2, G: 2, B: 2, A: 255}
)

// analogMinutePixel is the one source of truth for a minutes-ring pixel in
// analog mode: the second marker occludes the minute marker, which occludes
// the five-step tick marks. Both redraw and incremental update derive pixel
// colors from it, which is what keeps the two paths bit-identical.
func analogMinutePixel(t clock.Moment, i int) color.RGBA {
	switch {
	case i == t.Second:
		return analogSecond
	case i == t.Minute:
		return analogMinute
	case i%5 == 0:
		return analogTick
	default:
		return ringOff
	}
}

func (r *Renderer) analogRedraw(t clock.Moment) error {
	hp := hourPixel(t.Hour)
	for i := 0; i < r.hours.Len(); i++ {
		if i == hp {
			r.hours.SetPixel(i, analogHour)
		} else {
			r.hours.SetPixel(i, ringOff)
		}
	}
	if err := r.hours.Show(); err != nil {
		return err
	}
	for i := 0; i < r.minutes.Len(); i++ {
		r.minutes.SetPixel(i, analogMinutePixel(t, i))
	}
	return r.minutes.Show()
}

func (r *Renderer) analogUpdate(prev, cur clock.Moment) error {
	if hp, hc := hourPixel(prev.Hour), hourPixel(cur.Hour); hp != hc {
		r.hours.SetPixel(hp, ringOff)
		r.hours.SetPixel(hc, analogHour)
		if err := r.hours.Show(); err != nil {
			return err
		}
	}
	if prev.Minute == cur.Minute && prev.Second == cur.Second {
		return nil
	}
	// Repaint the vacated and the newly occupied positions; everything
	// else already matches a full redraw of cur.
	for _, i := range [4]int{prev.Minute, prev.Second, cur.Minute, cur.Second} {
		r.minutes.SetPixel(i, analogMinutePixel(cur, i))
	}
	return r.minutes.Show()
}
