//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"halo/app"
	"halo/hal"
	"halo/internal/buildinfo"
	"halo/internal/simcfg"
	"halo/internal/telemetry"
)

func main() {
	var (
		configPath = flag.String("config", "halo.yaml", "Path to the simulator config.")
		runner     = flag.String("runner", "", "Override the configured runner (window, term, headless).")
		version    = flag.Bool("version", false, "Print the version and exit.")
	)
	flag.Parse()

	if *version {
		fmt.Println("halo " + buildinfo.Full())
		return
	}

	cfg, err := simcfg.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *runner != "" {
		cfg.Sim.Runner = *runner
	}

	level, err := zerolog.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logOut := io.Writer(os.Stderr)
	if cfg.Sim.Runner == "term" {
		// The terminal runner owns the screen; console logging would
		// scribble over it.
		logOut = io.Discard
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: logOut}).Level(level).With().Timestamp().Logger()

	stats := &hal.Stats{}
	if cfg.Metrics.Enabled {
		telemetry.Serve(cfg.Metrics.Listen, stats, log)
	}

	sim := hal.SimConfig{
		StartTime:   cfg.StartTime(),
		Speed:       cfg.Sim.Speed,
		FailRTC:     cfg.Sim.FailRTC,
		WindowScale: cfg.Sim.Scale,
		Stats:       stats,
		Log:         log,
	}
	start := func(h hal.HAL) { app.Run(h) }

	switch cfg.Sim.Runner {
	case "term":
		err = hal.RunTerm(sim, start)
	case "headless":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		hcfg := hal.HeadlessConfig{Duration: cfg.Headless.Duration, Report: cfg.Headless.Report}
		err = hal.RunHeadless(ctx, sim, hcfg, start)
		if err == context.Canceled {
			err = nil
		}
	default:
		err = hal.RunWindow(sim, start)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
