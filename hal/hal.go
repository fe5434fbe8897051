// Package hal abstracts the clock hardware behind narrow capability
// interfaces so the same application drives a physical board (tinygo
// build) and the host simulator (ebiten window, terminal, headless).
package hal

import (
	"image/color"
	"time"

	"halo/clock"
)

// Lengths of the two LED rings.
const (
	HoursRingLen   = 24
	MinutesRingLen = 60
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction for the status LED.
type LED interface {
	High()
	Low()
}

// Ring is one addressable LED ring. SetPixel stages a color in the ring's
// pixel buffer; nothing changes on the hardware until Show flushes it.
// Indexes outside [0, Len) are ignored.
type Ring interface {
	Len() int
	SetPixel(i int, c color.RGBA)
	Show() error
}

// FontID selects one of the text panel's built-in fonts.
type FontID uint8

const (
	FontSmall FontID = iota
	FontLarge
)

// TextPanel is the character surface of the secondary display: a fixed
// grid addressed by column and row, with an insertion cursor that advances
// as text is printed. Print draws immediately; Flush pushes the staged
// pixels to the device.
type TextPanel interface {
	Clear()
	SetCursor(col, row int)
	SelectFont(id FontID)
	Print(s string)
	ClearToEOL()
	Flush() error
	Size() (cols, rows int)
}

// Button identifies one of the two push buttons.
type Button uint8

const (
	// ButtonMode is the primary (blue) button: opens the configuration
	// session, accepts a screen on a short press, aborts on a long one.
	ButtonMode Button = iota
	// ButtonSet is the secondary (red) button: steps the highlighted value.
	ButtonSet
)

// Buttons reports instantaneous button state. Implementations absorb the
// active-low pull-up convention: Pressed returns true while the button is
// physically held down.
type Buttons interface {
	Pressed(b Button) bool
}

// RTC reads and writes the battery-backed clock. Detect probes the
// peripheral once at boot; a failed probe is the only fatal condition in
// the whole program.
type RTC interface {
	Detect() error
	ReadTime() (clock.Moment, error)
	SetTime(m clock.Moment) error
}

// Clock supplies monotonic time for press classification and animation
// deadlines, and paces the polling loops. Tests inject scripted fakes.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// HAL is the only contact point between the application and a target.
type HAL interface {
	Logger() Logger
	LED() LED
	Rings() (hours, minutes Ring)
	Panel() TextPanel
	Buttons() Buttons
	RTC() RTC
	Clock() Clock
}
