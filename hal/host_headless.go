//go:build !tinygo

package hal

import (
	"context"
	"time"
)

// HeadlessConfig controls the no-display host runner.
type HeadlessConfig struct {
	Duration time.Duration // stop after this long; 0 means run until canceled
	Report   time.Duration // progress log interval; 0 disables it
}

// RunHeadless runs the application without any display, for timed soak
// runs. It reports flush counts on a fixed cadence and stops when the
// context is canceled or the configured duration elapses.
func RunHeadless(ctx context.Context, cfg SimConfig, hcfg HeadlessConfig, start func(HAL)) error {
	h := newSim(cfg)
	go start(h)

	var deadline <-chan time.Time
	if hcfg.Duration > 0 {
		t := time.NewTimer(hcfg.Duration)
		defer t.Stop()
		deadline = t.C
	}
	var report <-chan time.Time
	if hcfg.Report > 0 {
		t := time.NewTicker(hcfg.Report)
		defer t.Stop()
		report = t.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline:
			return nil
		case <-report:
			ev := cfg.Log.Info()
			if s := cfg.Stats; s != nil {
				ev = ev.
					Uint64("hours_shows", s.HoursShows.Load()).
					Uint64("minutes_shows", s.MinutesShows.Load()).
					Uint64("panel_flushes", s.PanelFlushes.Load()).
					Uint64("rtc_reads", s.RTCReads.Load())
			}
			ev.Str("panel", h.panel.Line(1)).Msg("headless tick")
		}
	}
}
