//go:build !tinygo

package hal

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Terminals deliver no key-release events, so a tap latches a synthetic
// hold long enough for the polling loops to observe it: 'b' is a short
// primary press, 'B' a long one, 'r' a secondary press.
const (
	termShortHold = 300 * time.Millisecond
	termLongHold  = 1500 * time.Millisecond
	termSetHold   = 120 * time.Millisecond

	termFrame = 50 * time.Millisecond
)

// RunTerm draws the rings as colored cells in the terminal and mirrors the
// panel's text rows under them. Blocks until q, Esc or Ctrl-C.
func RunTerm(cfg SimConfig, start func(HAL)) error {
	h := newSim(cfg)
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	go start(h)

	quit := make(chan struct{})
	go func() {
		defer close(quit)
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					return
				case ev.Rune() == 'b':
					h.buttons.PressFor(ButtonMode, termShortHold)
				case ev.Rune() == 'B':
					h.buttons.PressFor(ButtonMode, termLongHold)
				case ev.Rune() == 'r':
					h.buttons.PressFor(ButtonSet, termSetHold)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	hours := make([]color.RGBA, HoursRingLen)
	minutes := make([]color.RGBA, MinutesRingLen)
	tick := time.NewTicker(termFrame)
	defer tick.Stop()

	for {
		select {
		case <-quit:
			return nil
		case <-tick.C:
			screen.Clear()

			h.minutes.Snapshot(minutes)
			drawTermRing(screen, minutes, 32, 15, 28, 14)
			h.hours.Snapshot(hours)
			drawTermRing(screen, hours, 32, 15, 17, 8)

			_, rows := h.panel.Size()
			for r := 0; r < rows; r++ {
				putTermText(screen, 10, 31+r, h.panel.Line(r), tcell.StyleDefault)
			}

			led := tcell.StyleDefault.Foreground(tcell.ColorGray)
			if h.led.On() {
				led = tcell.StyleDefault.Foreground(tcell.ColorGreen)
			}
			screen.SetContent(0, 0, '*', nil, led)
			putTermText(screen, 2, 0, "b=mode  B=hold  r=set  q=quit", tcell.StyleDefault.Foreground(tcell.ColorGray))

			screen.Show()
		}
	}
}

// drawTermRing paints one ring clockwise from twelve o'clock. Cells are
// roughly twice as tall as wide, so the x radius is doubled to keep the
// ring round.
func drawTermRing(s tcell.Screen, px []color.RGBA, cx, cy, rx, ry int) {
	n := len(px)
	for i, c := range px {
		a := 2 * math.Pi * float64(i) / float64(n)
		x := cx + int(math.Round(float64(rx)*math.Sin(a)))
		y := cy - int(math.Round(float64(ry)*math.Cos(a)))
		b := brighten(c)
		s.SetContent(x, y, '●', nil, tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(b.R), int32(b.G), int32(b.B))))
	}
}

func putTermText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range text {
		s.SetContent(x+i, y, ch, nil, st)
	}
}
