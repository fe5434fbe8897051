package setup

import (
	"fmt"

	"halo/clock"
)

// screen is one step of the configuration session. Legend is rendered once
// on entry, Setting on every poll; Advance steps the value on a secondary
// press, Confirm runs on any primary press before it is classified, Tick
// runs every poll cycle to keep the rings live.
type screen interface {
	Legend() string
	Setting() string
	Advance()
	Confirm() error
	Tick() error
}

// faceScreen cycles the ring display mode. Each step redraws both rings
// immediately, so the choice previews live.
type faceScreen struct{ s *Session }

func (sc *faceScreen) Legend() string  { return "Ring style" }
func (sc *faceScreen) Setting() string { return sc.s.State.Face.Name() }

func (sc *faceScreen) Advance() {
	st := sc.s.State
	st.Face = st.Face.Next()
	sc.s.logErr(sc.s.Rings.Redraw(st.Face, st.Prev))
}

func (sc *faceScreen) Confirm() error { return nil }

func (sc *faceScreen) Tick() error { return sc.s.followClock() }

// panelScreen cycles the secondary-display mode. The panel itself is busy
// showing this menu, so the new mode only takes effect through the
// unconditional redraw at session end.
type panelScreen struct{ s *Session }

func (sc *panelScreen) Legend() string  { return "Panel mode" }
func (sc *panelScreen) Setting() string { return sc.s.State.Panel.Name() }

func (sc *panelScreen) Advance() {
	sc.s.State.Panel = sc.s.State.Panel.Next()
}

func (sc *panelScreen) Confirm() error { return nil }

func (sc *panelScreen) Tick() error { return sc.s.followClock() }

// hourScreen edits the hour. The moment is captured when the screen is
// entered, with seconds zeroed so every committed value is whole-second.
type hourScreen struct {
	s      *Session
	moment clock.Moment
}

func (sc *hourScreen) Legend() string  { return "Set hour" }
func (sc *hourScreen) Setting() string { return fmt.Sprintf("%02d", sc.moment.Hour) }

func (sc *hourScreen) Advance() {
	sc.moment = sc.moment.WithHour(sc.moment.Hour + 1)
}

func (sc *hourScreen) Confirm() error { return sc.s.RTC.SetTime(sc.moment) }

func (sc *hourScreen) Tick() error { return sc.s.followEdit(sc.moment) }

// minuteScreen edits the minute. Stepping the value resets the seconds and
// forces a full ring redraw, so the preview shows the discontinuity at
// once instead of waiting for the incremental path.
type minuteScreen struct {
	s      *Session
	moment clock.Moment
}

func (sc *minuteScreen) Legend() string  { return "Set minute" }
func (sc *minuteScreen) Setting() string { return fmt.Sprintf("%02d", sc.moment.Minute) }

func (sc *minuteScreen) Advance() {
	sc.moment = sc.moment.WithMinute(sc.moment.Minute + 1)
	sc.s.logErr(sc.s.Rings.Redraw(sc.s.State.Face, sc.moment))
	sc.s.State.Prev = sc.moment
}

func (sc *minuteScreen) Confirm() error { return sc.s.RTC.SetTime(sc.moment) }

func (sc *minuteScreen) Tick() error { return sc.s.followEdit(sc.moment) }

// followClock re-reads the RTC and drives the incremental update, keeping
// the rings ticking while a mode screen is open.
func (s *Session) followClock() error {
	m, err := s.RTC.ReadTime()
	if err != nil {
		return err
	}
	err = s.Rings.Update(s.State.Face, s.State.Prev, m)
	s.State.Prev = m
	return err
}

// followEdit previews the edited moment on the rings while time stands
// still for the user.
func (s *Session) followEdit(m clock.Moment) error {
	err := s.Rings.Update(s.State.Face, s.State.Prev, m)
	s.State.Prev = m
	return err
}
