package setup

import (
	"halo/clock"
	"halo/face"
	"halo/hal"
	"halo/panel"
)

// State is the clock's runtime state: the active modes and the last moment
// rendered. The main loop owns it and lends it to a session for the
// session's duration; nothing else ever mutates it.
type State struct {
	Face  face.Mode
	Panel panel.Mode
	Prev  clock.Moment
}

// Session wires one configuration run: the shared state, both render
// engines, and the peripherals it polls.
type Session struct {
	State   *State
	Rings   *face.Renderer
	Panel   *panel.Renderer
	RTC     hal.RTC
	Buttons hal.Buttons
	Disp    hal.TextPanel
	Clk     hal.Clock
	Log     hal.Logger
}

// Run executes the screen sequence: display mode, panel mode, hour,
// minute. It first waits for the primary button to come back up so the
// press that opened the session cannot immediately accept the first
// screen. A long primary press anywhere ends the whole session. Whether
// the sequence completed or aborted, the secondary display is redrawn for
// the active panel mode and the previous-moment baseline is reset so the
// main loop resumes without a spurious jump.
func (s *Session) Run() {
	waitRelease(s.sample(hal.ButtonMode), s.Clk)

	builders := []func() screen{
		func() screen { return &faceScreen{s: s} },
		func() screen { return &panelScreen{s: s} },
		s.newHourScreen,
		s.newMinuteScreen,
	}
	for _, build := range builders {
		if s.runScreen(build()) == PressLong {
			break
		}
	}

	m, err := s.RTC.ReadTime()
	if err != nil {
		s.logErr(err)
		m = s.State.Prev
	}
	s.logErr(s.Panel.Redraw(s.State.Panel, m))
	s.State.Prev = m
}

func (s *Session) newHourScreen() screen {
	m := s.entryMoment()
	return &hourScreen{s: s, moment: m.WithHour(m.Hour)}
}

func (s *Session) newMinuteScreen() screen {
	m := s.entryMoment()
	return &minuteScreen{s: s, moment: m.WithMinute(m.Minute)}
}

// entryMoment is the moment an editing screen starts from: the current
// clock if it can be read, the last rendered moment otherwise.
func (s *Session) entryMoment() clock.Moment {
	m, err := s.RTC.ReadTime()
	if err != nil {
		s.logErr(err)
		return s.State.Prev
	}
	return m
}

// runScreen is the shared per-screen loop: legend once, then poll. The
// returned classification tells the caller whether to continue the
// sequence or unwind it.
func (s *Session) runScreen(sc screen) Press {
	s.Disp.Clear()
	s.Disp.SelectFont(hal.FontSmall)
	s.Disp.SetCursor(0, 0)
	s.Disp.Print(sc.Legend())

	for {
		s.Disp.SelectFont(hal.FontSmall)
		s.Disp.SetCursor(0, 2)
		s.Disp.Print(sc.Setting())
		s.Disp.ClearToEOL()
		s.logErr(s.Disp.Flush())

		if s.Buttons.Pressed(hal.ButtonMode) {
			s.logErr(sc.Confirm())
			return Classify(s.sample(hal.ButtonMode), LongPressAfter, s.Clk)
		}
		if s.Buttons.Pressed(hal.ButtonSet) {
			if Debounce(s.sample(hal.ButtonSet), debounceHold, s.Clk) {
				sc.Advance()
			}
		}
		s.logErr(sc.Tick())
		s.Clk.Sleep(tickInterval)
	}
}

func (s *Session) sample(b hal.Button) func() bool {
	return func() bool { return s.Buttons.Pressed(b) }
}

func (s *Session) logErr(err error) {
	if err != nil && s.Log != nil {
		s.Log.WriteLineString("setup: " + err.Error())
	}
}
