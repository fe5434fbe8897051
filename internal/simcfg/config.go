// Package simcfg loads the host simulator configuration from a YAML file
// with HALO_* environment overrides. The device build takes no
// configuration; everything here is development surface.
package simcfg

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gookit/validate"
	"github.com/spf13/viper"
)

type Sim struct {
	Runner  string  `mapstructure:"runner" validate:"required|in:window,term,headless"`
	Scale   int     `mapstructure:"scale" validate:"min:1|max:16"`
	Start   string  `mapstructure:"start"` // RFC3339; empty means wall clock
	Speed   float64 `mapstructure:"speed"`
	FailRTC bool    `mapstructure:"failRtc"`
}

type Headless struct {
	Duration time.Duration `mapstructure:"duration"` // 0 runs until interrupted
	Report   time.Duration `mapstructure:"report"`
}

type Logger struct {
	Level string `mapstructure:"level" validate:"required|in:trace,debug,info,warn,error"`
}

type Metrics struct {
	Enabled bool   `mapstructure:"enabled"`
	Listen  string `mapstructure:"listen"`
}

type Config struct {
	Sim      Sim      `mapstructure:"sim"`
	Headless Headless `mapstructure:"headless"`
	Logger   Logger   `mapstructure:"logger"`
	Metrics  Metrics  `mapstructure:"metrics"`
}

// Load reads the config at path. A missing file is not an error: defaults
// and the environment apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	filename := filepath.Base(path)
	v.AddConfigPath(filepath.Dir(path))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.SetDefault("sim.runner", "window")
	v.SetDefault("sim.scale", 3)
	v.SetDefault("sim.speed", 1.0)
	v.SetDefault("headless.report", time.Second)
	v.SetDefault("logger.level", "info")
	v.SetDefault("metrics.listen", ":9090")

	v.BindEnv("sim.runner", "HALO_RUNNER")
	v.BindEnv("sim.start", "HALO_START")
	v.BindEnv("sim.speed", "HALO_SPEED")
	v.BindEnv("sim.failRtc", "HALO_FAIL_RTC")
	v.BindEnv("logger.level", "HALO_LOG_LEVEL")
	v.BindEnv("metrics.enabled", "HALO_METRICS_ENABLED")
	v.BindEnv("metrics.listen", "HALO_METRICS_LISTEN")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("simcfg: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("simcfg: unable to decode config: %w", err)
	}
	if err := check(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func check(cfg *Config) error {
	val := validate.Struct(cfg)
	if !val.Validate() {
		return fmt.Errorf("simcfg: %s", val.Errors.One())
	}
	if cfg.Sim.Start != "" {
		if _, err := time.Parse(time.RFC3339, cfg.Sim.Start); err != nil {
			return fmt.Errorf("simcfg: start: %w", err)
		}
	}
	return nil
}

// StartTime returns the parsed RTC start, or the zero time for wall clock.
func (c *Config) StartTime() time.Time {
	if c.Sim.Start == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339, c.Sim.Start)
	return t
}
