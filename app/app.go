// Package app boots the clock and runs the main loop, the same code on
// the physical board and in the host simulator.
package app

import (
	"fmt"
	"time"

	"halo/face"
	"halo/hal"
	"halo/internal/buildinfo"
	"halo/panel"
	"halo/setup"
)

const (
	// pollInterval paces the main loop.
	pollInterval = 10 * time.Millisecond

	// heartbeatPeriod is the status LED toggle cadence.
	heartbeatPeriod = time.Second
)

// App is the wired-up clock: both render engines plus the shared state the
// main loop and the configuration sessions take turns owning.
type App struct {
	h     hal.HAL
	rings *face.Renderer
	panel *panel.Renderer
	state setup.State

	beat  time.Time
	ledOn bool
}

// New probes the hardware and paints the initial display. A failed RTC
// probe is the one fatal condition; everything after boot degrades to
// logging instead.
func New(h hal.HAL) (*App, error) {
	h.Logger().WriteLineString("halo " + buildinfo.Short())

	if err := h.RTC().Detect(); err != nil {
		return nil, fmt.Errorf("app: rtc probe: %w", err)
	}
	m, err := h.RTC().ReadTime()
	if err != nil {
		return nil, fmt.Errorf("app: rtc read: %w", err)
	}

	hours, minutes := h.Rings()
	a := &App{
		h:     h,
		rings: face.NewRenderer(hours, minutes, h.Clock().Now),
		panel: panel.NewRenderer(h.Panel()),
		state: setup.State{Face: face.ModeAnalog, Panel: panel.ModeShowSeconds, Prev: m},
		beat:  h.Clock().Now(),
	}
	a.logErr(a.rings.Redraw(a.state.Face, m))
	a.logErr(a.panel.Redraw(a.state.Panel, m))
	return a, nil
}

// Run boots and loops forever. This is the entry point on both targets.
func Run(h hal.HAL) {
	a, err := New(h)
	if err != nil {
		Halt(h, err)
	}
	clk := h.Clock()
	for {
		a.Tick()
		clk.Sleep(pollInterval)
	}
}

// Tick is one main-loop iteration: heartbeat, then either a configuration
// session (mode button down) or a clock poll with incremental updates.
func (a *App) Tick() {
	a.heartbeat()

	if a.h.Buttons().Pressed(hal.ButtonMode) {
		a.configure()
		return
	}

	m, err := a.h.RTC().ReadTime()
	if err != nil {
		a.logErr(err)
		return
	}
	a.logErr(a.rings.Update(a.state.Face, a.state.Prev, m))
	a.logErr(a.panel.Update(a.state.Panel, a.state.Prev, m))
	a.state.Prev = m
}

func (a *App) configure() {
	s := &setup.Session{
		State:   &a.state,
		Rings:   a.rings,
		Panel:   a.panel,
		RTC:     a.h.RTC(),
		Buttons: a.h.Buttons(),
		Disp:    a.h.Panel(),
		Clk:     a.h.Clock(),
		Log:     a.h.Logger(),
	}
	s.Run()
	a.logErr(a.rings.Redraw(a.state.Face, a.state.Prev))
}

func (a *App) heartbeat() {
	now := a.h.Clock().Now()
	if now.Sub(a.beat) < heartbeatPeriod {
		return
	}
	a.beat = now
	a.ledOn = !a.ledOn
	if a.ledOn {
		a.h.LED().High()
	} else {
		a.h.LED().Low()
	}
}

func (a *App) logErr(err error) {
	if err != nil {
		a.h.Logger().WriteLineString("app: " + err.Error())
	}
}
