// Package face renders the time onto the two LED rings. Each Mode is one
// rendering strategy with a full redraw and a minimal incremental update;
// the incremental path must leave the rings bit-identical to a full redraw
// of the same moment, whatever the previous moment was.
package face

import (
	"image/color"
	"time"

	"halo/clock"
	"halo/hal"
)

// Mode selects the active ring strategy. The set is closed; dispatch is a
// switch at the two call sites rather than an interface.
type Mode uint8

const (
	ModeAnalog Mode = iota
	ModeArcGrowth
	ModePastelRotate

	modeCount
)

// Next cycles to the following mode, wrapping after the last one.
func (m Mode) Next() Mode {
	return Mode((uint8(m) + 1) % uint8(modeCount))
}

// Name returns the fixed-width menu label for the mode.
func (m Mode) Name() string {
	switch m {
	case ModeAnalog:
		return "Analog  "
	case ModeArcGrowth:
		return "Arcs    "
	case ModePastelRotate:
		return "Pastel  "
	default:
		return "?       "
	}
}

var ringOff = color.RGBA{A: 255}

// hourPixel maps a 24-hour value onto the hours ring, two pixels per
// 12-hour unit.
func hourPixel(hour int) int {
	return clock.TwelveHour(hour) * 2
}

// Renderer owns the per-mode render state and drives both rings. Redraw
// resets the active strategy's state, so mode switches and manual time
// edits always start clean.
type Renderer struct {
	hours   hal.Ring
	minutes hal.Ring
	now     func() time.Time

	active Mode
	drawn  bool
	pastel pastelState
}

// NewRenderer builds a renderer over the two rings. now supplies the
// monotonic time used by strategies with animation deadlines; tests inject
// a fake.
func NewRenderer(hours, minutes hal.Ring, now func() time.Time) *Renderer {
	return &Renderer{hours: hours, minutes: minutes, now: now}
}

// Redraw recomputes and flushes every pixel on both rings for m at moment
// t. It is idempotent and always safe to call.
func (r *Renderer) Redraw(m Mode, t clock.Moment) error {
	r.active = m
	r.drawn = true
	switch m {
	case ModeArcGrowth:
		return r.arcRedraw(t)
	case ModePastelRotate:
		return r.pastelRedraw(t, r.now())
	default:
		return r.analogRedraw(t)
	}
}

// Update repaints only what changed between prev and cur and flushes only
// the rings actually touched. Falls back to Redraw on the first call after
// construction or whenever the mode on the rings differs from m.
func (r *Renderer) Update(m Mode, prev, cur clock.Moment) error {
	if !r.drawn || m != r.active {
		return r.Redraw(m, cur)
	}
	switch m {
	case ModeArcGrowth:
		return r.arcUpdate(prev, cur)
	case ModePastelRotate:
		return r.pastelUpdate(cur, r.now())
	default:
		return r.analogUpdate(prev, cur)
	}
}
