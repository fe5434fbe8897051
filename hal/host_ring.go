//go:build !tinygo

package hal

import (
	"image/color"
	"sync"
)

type ringID uint8

const (
	ringHours ringID = iota
	ringMinutes
)

// simRing is an in-memory LED ring. The application goroutine stages and
// shows pixels; a runner goroutine reads the last shown state, so both
// sides go through the mutex.
type simRing struct {
	mu     sync.Mutex
	staged []color.RGBA
	shown  []color.RGBA
	stats  *Stats
	id     ringID
}

func newSimRing(n int, stats *Stats, id ringID) *simRing {
	return &simRing{
		staged: make([]color.RGBA, n),
		shown:  make([]color.RGBA, n),
		stats:  stats,
		id:     id,
	}
}

func (r *simRing) Len() int { return len(r.staged) }

func (r *simRing) SetPixel(i int, c color.RGBA) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i < 0 || i >= len(r.staged) {
		return
	}
	r.staged[i] = c
}

func (r *simRing) Show() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy(r.shown, r.staged)
	if r.stats != nil {
		if r.id == ringHours {
			r.stats.HoursShows.Add(1)
		} else {
			r.stats.MinutesShows.Add(1)
		}
	}
	return nil
}

// Snapshot copies the last shown pixel state into dst.
func (r *simRing) Snapshot(dst []color.RGBA) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy(dst, r.shown)
}
