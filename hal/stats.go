//go:build !tinygo

package hal

import "sync/atomic"

// Stats counts simulated device activity. The telemetry endpoint exposes
// the counters; the devices bump them.
type Stats struct {
	HoursShows   atomic.Uint64
	MinutesShows atomic.Uint64
	PanelFlushes atomic.Uint64
	ModePresses  atomic.Uint64
	SetPresses   atomic.Uint64
	RTCReads     atomic.Uint64
	RTCWrites    atomic.Uint64
	LEDToggles   atomic.Uint64
}
