// Package telemetry exposes the host simulator's activity counters over
// HTTP for development soak runs. It is never built into the device.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"halo/hal"
)

// Handler serves /metrics and /healthz for the given counters.
func Handler(stats *hal.Stats) http.Handler {
	reg := prometheus.NewRegistry()
	counter := func(name, help string, load func() uint64) {
		reg.MustRegister(prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: name,
			Help: help,
		}, func() float64 { return float64(load()) }))
	}
	counter("halo_ring_hours_shows_total", "Hours-ring flushes.", stats.HoursShows.Load)
	counter("halo_ring_minutes_shows_total", "Minutes-ring flushes.", stats.MinutesShows.Load)
	counter("halo_panel_flushes_total", "Text panel flushes.", stats.PanelFlushes.Load)
	counter("halo_button_mode_presses_total", "Primary button presses.", stats.ModePresses.Load)
	counter("halo_button_set_presses_total", "Secondary button presses.", stats.SetPresses.Load)
	counter("halo_rtc_reads_total", "RTC reads.", stats.RTCReads.Load)
	counter("halo_rtc_writes_total", "RTC writes.", stats.RTCWrites.Load)
	counter("halo_led_toggles_total", "Status LED toggles.", stats.LEDToggles.Load)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// Serve starts the endpoint in the background. The process owns the
// listener for its whole life, so there is no shutdown path.
func Serve(addr string, stats *hal.Stats, log zerolog.Logger) {
	srv := &http.Server{
		Addr:         addr,
		Handler:      Handler(stats),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() {
		log.Info().Str("addr", addr).Msg("telemetry listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("telemetry server stopped")
		}
	}()
}
