// Package panel renders the secondary character display: nothing, the
// running seconds, or the date. Strategies mirror the ring engine's
// contract: a full redraw plus an incremental update that only touches the
// display when its content actually changes.
package panel

import (
	"fmt"

	"halo/clock"
	"halo/hal"
)

// Mode selects the secondary-display strategy. Closed set, switch dispatch.
type Mode uint8

const (
	ModeOff Mode = iota
	ModeShowSeconds
	ModeShowDate

	modeCount
)

// Next cycles to the following mode, wrapping after the last one.
func (m Mode) Next() Mode {
	return Mode((uint8(m) + 1) % uint8(modeCount))
}

// Name returns the fixed-width menu label for the mode.
func (m Mode) Name() string {
	switch m {
	case ModeOff:
		return "Off     "
	case ModeShowSeconds:
		return "Seconds "
	case ModeShowDate:
		return "Date    "
	default:
		return "?       "
	}
}

// Renderer drives the character panel for whichever Mode is active.
type Renderer struct {
	p      hal.TextPanel
	active Mode
	drawn  bool
}

func NewRenderer(p hal.TextPanel) *Renderer {
	return &Renderer{p: p}
}

// Redraw clears the panel and paints the full content for m at moment t.
func (r *Renderer) Redraw(m Mode, t clock.Moment) error {
	r.active = m
	r.drawn = true
	r.p.Clear()
	switch m {
	case ModeShowSeconds:
		return r.printSeconds(t)
	case ModeShowDate:
		return r.printDate(t)
	default:
		return r.p.Flush()
	}
}

// Update repaints only when the displayed value changed: the two-digit
// seconds on a second change, the whole date layout on a day change,
// nothing at all when off.
func (r *Renderer) Update(m Mode, prev, cur clock.Moment) error {
	if !r.drawn || m != r.active {
		return r.Redraw(m, cur)
	}
	switch m {
	case ModeShowSeconds:
		if prev.Second == cur.Second {
			return nil
		}
		return r.printSeconds(cur)
	case ModeShowDate:
		if prev.Day == cur.Day && prev.Month == cur.Month && prev.Year == cur.Year {
			return nil
		}
		return r.Redraw(m, cur)
	default:
		return nil
	}
}

func (r *Renderer) printSeconds(t clock.Moment) error {
	r.p.SelectFont(hal.FontLarge)
	r.p.SetCursor(6, 1)
	r.p.Print(fmt.Sprintf("%02d", t.Second))
	return r.p.Flush()
}

// printDate lays out the weekday name over a zero-padded year/month/day
// line, both centered. The layout owns the whole surface, so callers clear
// before printing.
func (r *Renderer) printDate(t clock.Moment) error {
	r.p.SelectFont(hal.FontSmall)
	name := clock.WeekdayName(t.Weekday)
	r.p.SetCursor(centerCol(r.p, name), 1)
	r.p.Print(name)

	date := fmt.Sprintf("%04d/%02d/%02d", t.Year, t.Month, t.Day)
	r.p.SetCursor(centerCol(r.p, date), 2)
	r.p.Print(date)
	return r.p.Flush()
}

func centerCol(p hal.TextPanel, s string) int {
	cols, _ := p.Size()
	c := (cols - len(s)) / 2
	if c < 0 {
		return 0
	}
	return c
}
