//go:build !tinygo

package hal

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// SimConfig shapes the simulated board the host runners build.
type SimConfig struct {
	StartTime   time.Time // RTC start; the zero value means wall-clock time
	Speed       float64   // RTC speed factor; 0 means real time
	FailRTC     bool      // fail the boot probe, exercising the halt path
	WindowScale int       // window runner pixel scale; 0 picks a default
	Stats       *Stats    // optional activity counters, may be nil
	Log         zerolog.Logger
}

type simHAL struct {
	logger  *zerologLogger
	led     *simLED
	hours   *simRing
	minutes *simRing
	frame   *simFrame
	panel   *GridPanel
	buttons *simButtons
	rtc     *simRTC
	clk     realClock
	stats   *Stats
}

// NewSim returns the host HAL: in-memory rings, a pixel frame behind the
// text panel, latching buttons and a simulated RTC.
func NewSim(cfg SimConfig) HAL { return newSim(cfg) }

func newSim(cfg SimConfig) *simHAL {
	frame := newSimFrame(128, 64)
	frame.flushes = cfg.Stats
	return &simHAL{
		logger:  &zerologLogger{log: cfg.Log},
		led:     &simLED{stats: cfg.Stats},
		hours:   newSimRing(HoursRingLen, cfg.Stats, ringHours),
		minutes: newSimRing(MinutesRingLen, cfg.Stats, ringMinutes),
		frame:   frame,
		panel:   NewGridPanel(frame),
		buttons: newSimButtons(time.Now, cfg.Stats),
		rtc:     newSimRTC(cfg.StartTime, cfg.Speed, cfg.FailRTC, time.Now, cfg.Stats),
		stats:   cfg.Stats,
	}
}

func (h *simHAL) Logger() Logger               { return h.logger }
func (h *simHAL) LED() LED                     { return h.led }
func (h *simHAL) Rings() (hours, minutes Ring) { return h.hours, h.minutes }
func (h *simHAL) Panel() TextPanel             { return h.panel }
func (h *simHAL) Buttons() Buttons             { return h.buttons }
func (h *simHAL) RTC() RTC                     { return h.rtc }
func (h *simHAL) Clock() Clock                 { return h.clk }

type realClock struct{}

func (realClock) Now() time.Time        { return time.Now() }
func (realClock) Sleep(d time.Duration) { time.Sleep(d) }

type zerologLogger struct {
	log zerolog.Logger
}

func (l *zerologLogger) WriteLineString(s string) { l.log.Info().Msg(s) }
func (l *zerologLogger) WriteLineBytes(b []byte)  { l.log.Info().Msg(string(b)) }

// simLED stands in for the status LED; the runners draw its state and the
// telemetry endpoint reads the toggle count.
type simLED struct {
	mu    sync.Mutex
	on    bool
	stats *Stats
}

func (l *simLED) High() { l.set(true) }
func (l *simLED) Low()  { l.set(false) }

func (l *simLED) set(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.on != on {
		if l.stats != nil {
			l.stats.LEDToggles.Add(1)
		}
		l.on = on
	}
}

func (l *simLED) On() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on
}
