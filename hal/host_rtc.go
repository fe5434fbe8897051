//go:build !tinygo

package hal

import (
	"errors"
	"sync"
	"time"

	"halo/clock"
)

// simRTC is the simulated battery-backed clock. It runs at a configurable
// speed factor relative to the host clock and rebases on every write, the
// same observable behavior as the real peripheral minus the battery.
type simRTC struct {
	mu    sync.Mutex
	now   func() time.Time
	base  time.Time // simulated time at the last rebase
	ref   time.Time // host time of the last rebase
	speed float64
	fail  bool
	stats *Stats
}

func newSimRTC(start time.Time, speed float64, fail bool, now func() time.Time, stats *Stats) *simRTC {
	if now == nil {
		now = time.Now
	}
	if speed <= 0 {
		speed = 1
	}
	n := now()
	if start.IsZero() {
		start = n
	}
	return &simRTC{now: now, base: start, ref: n, speed: speed, fail: fail, stats: stats}
}

func (r *simRTC) Detect() error {
	if r.fail {
		return errors.New("rtc: simulated probe failure")
	}
	return nil
}

func (r *simRTC) ReadTime() (clock.Moment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stats != nil {
		r.stats.RTCReads.Add(1)
	}
	elapsed := r.now().Sub(r.ref)
	return clock.FromTime(r.base.Add(time.Duration(float64(elapsed) * r.speed))), nil
}

func (r *simRTC) SetTime(m clock.Moment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stats != nil {
		r.stats.RTCWrites.Add(1)
	}
	r.base = m.Time()
	r.ref = r.now()
	return nil
}
