//go:build !tinygo

package hal

import (
	"sync"
	"time"
)

// simButtons mirrors the two physical buttons. The window runner feeds it
// continuous key state through Set; the terminal runner gets no key-release
// events, so PressFor latches a press that expires on its own.
type simButtons struct {
	mu    sync.Mutex
	now   func() time.Time
	held  [2]bool
	until [2]time.Time
	stats *Stats
}

func newSimButtons(now func() time.Time, stats *Stats) *simButtons {
	return &simButtons{now: now, stats: stats}
}

func (b *simButtons) Pressed(btn Button) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := int(btn)
	if i < 0 || i >= len(b.held) {
		return false
	}
	return b.held[i] || b.now().Before(b.until[i])
}

// Set tracks a key being held down or released.
func (b *simButtons) Set(btn Button, held bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := int(btn)
	if i < 0 || i >= len(b.held) {
		return
	}
	if held && !b.held[i] {
		b.countPress(btn)
	}
	b.held[i] = held
}

// PressFor latches a synthetic press that releases after d.
func (b *simButtons) PressFor(btn Button, d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := int(btn)
	if i < 0 || i >= len(b.held) {
		return
	}
	b.countPress(btn)
	b.until[i] = b.now().Add(d)
}

func (b *simButtons) countPress(btn Button) {
	if b.stats == nil {
		return
	}
	if btn == ButtonMode {
		b.stats.ModePresses.Add(1)
	} else {
		b.stats.SetPresses.Add(1)
	}
}
