// Package setup is the configuration state machine: a fixed sequence of
// interactive screens driven by the two buttons. The primary button
// confirms a screen (short press) or aborts the whole session (long
// press); the secondary button steps the highlighted value.
package setup

import (
	"time"

	"halo/hal"
)

// Press is the outcome of classifying a primary-button hold.
type Press uint8

const (
	PressShort Press = iota
	PressLong
)

const (
	// LongPressAfter is the hold time that turns a primary press into a
	// session abort.
	LongPressAfter = 1000 * time.Millisecond

	// debounceHold is the minimum secondary-button hold that counts as a
	// press rather than contact bounce.
	debounceHold = 30 * time.Millisecond

	// tickInterval paces the screen polling loop.
	tickInterval = 100 * time.Millisecond

	// pressPoll is the sampling grain inside the button busy-waits.
	pressPoll = 10 * time.Millisecond
)

// Classify busy-waits on an already-pressed button until it is released,
// then reports whether the hold reached threshold. It deliberately blocks
// everything else; the clock is injected so tests can script the timing.
// Waiting for the release also keeps an aborting hold from being read
// again as a fresh press by whatever loop resumes afterwards.
func Classify(pressed func() bool, threshold time.Duration, clk hal.Clock) Press {
	start := clk.Now()
	for pressed() {
		clk.Sleep(pressPoll)
	}
	if clk.Now().Sub(start) >= threshold {
		return PressLong
	}
	return PressShort
}

// Debounce re-samples a freshly detected secondary press after a short
// hold, rejecting contact bounce, then waits out the rest of the press so
// one physical press counts exactly once.
func Debounce(pressed func() bool, hold time.Duration, clk hal.Clock) bool {
	clk.Sleep(hold)
	if !pressed() {
		return false
	}
	for pressed() {
		clk.Sleep(pressPoll)
	}
	return true
}

func waitRelease(pressed func() bool, clk hal.Clock) {
	for pressed() {
		clk.Sleep(pressPoll)
	}
}
