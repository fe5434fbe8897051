// Package testutil holds the scripted in-memory devices the package tests
// drive instead of hardware: rings, a pixel frame, buttons, an RTC and a
// fake monotonic clock.
package testutil

import (
	"image/color"
	"time"

	"halo/clock"
	"halo/hal"
)

// Ring records staged pixels and the state committed by the last Show.
type Ring struct {
	Staged []color.RGBA
	Shown  []color.RGBA
	Shows  int
	Err    error
}

func NewRing(n int) *Ring {
	return &Ring{Staged: make([]color.RGBA, n), Shown: make([]color.RGBA, n)}
}

func (r *Ring) Len() int { return len(r.Staged) }

func (r *Ring) SetPixel(i int, c color.RGBA) {
	if i < 0 || i >= len(r.Staged) {
		return
	}
	r.Staged[i] = c
}

func (r *Ring) Show() error {
	if r.Err != nil {
		return r.Err
	}
	copy(r.Shown, r.Staged)
	r.Shows++
	return nil
}

// Frame is an in-memory drivers.Displayer with the same optional
// ClearBuffer fast path the ssd1306 driver has.
type Frame struct {
	W, H     int16
	Pix      []color.RGBA
	Displays int
	Cleared  int
}

func NewFrame(w, h int16) *Frame {
	return &Frame{W: w, H: h, Pix: make([]color.RGBA, int(w)*int(h))}
}

func (f *Frame) Size() (int16, int16) { return f.W, f.H }

func (f *Frame) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || x >= f.W || y < 0 || y >= f.H {
		return
	}
	f.Pix[int(y)*int(f.W)+int(x)] = c
}

func (f *Frame) At(x, y int16) color.RGBA {
	if x < 0 || x >= f.W || y < 0 || y >= f.H {
		return color.RGBA{}
	}
	return f.Pix[int(y)*int(f.W)+int(x)]
}

func (f *Frame) Display() error { return nil }

func (f *Frame) ClearBuffer() {
	for i := range f.Pix {
		f.Pix[i] = color.RGBA{}
	}
	f.Cleared++
}

// Clock is a scripted monotonic clock: Now reports the current fake time
// and Sleep advances it, so polling loops run instantly and
// deterministically under test.
type Clock struct {
	T     time.Time
	Slept []time.Duration
}

func NewClock() *Clock { return &Clock{T: time.Unix(0, 0)} }

func (c *Clock) Now() time.Time { return c.T }

func (c *Clock) Sleep(d time.Duration) {
	c.T = c.T.Add(d)
	c.Slept = append(c.Slept, d)
}

func (c *Clock) Advance(d time.Duration) { c.T = c.T.Add(d) }

// ButtonFunc adapts a closure to hal.Buttons so tests can script button
// state off the fake clock.
type ButtonFunc func(hal.Button) bool

func (f ButtonFunc) Pressed(b hal.Button) bool { return f(b) }

// RTC is an in-memory clock peripheral that records every write.
type RTC struct {
	Moment    clock.Moment
	DetectErr error
	ReadErr   error
	Writes    []clock.Moment
}

func (r *RTC) Detect() error { return r.DetectErr }

func (r *RTC) ReadTime() (clock.Moment, error) {
	if r.ReadErr != nil {
		return clock.Moment{}, r.ReadErr
	}
	return r.Moment, nil
}

func (r *RTC) SetTime(m clock.Moment) error {
	r.Moment = m
	r.Writes = append(r.Writes, m)
	return nil
}

// Logger captures lines.
type Logger struct{ Lines []string }

func (l *Logger) WriteLineString(s string) { l.Lines = append(l.Lines, s) }
func (l *Logger) WriteLineBytes(b []byte)  { l.Lines = append(l.Lines, string(b)) }

// LED counts transitions.
type LED struct{ Highs, Lows int }

func (l *LED) High() { l.Highs++ }
func (l *LED) Low()  { l.Lows++ }
