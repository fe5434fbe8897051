package simcfg

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "halo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "halo.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "window", cfg.Sim.Runner)
	assert.Equal(t, 3, cfg.Sim.Scale)
	assert.Equal(t, 1.0, cfg.Sim.Speed)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, ":9090", cfg.Metrics.Listen)
	assert.False(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.StartTime().IsZero())
}

func TestLoadFromFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
sim:
  runner: headless
  speed: 60
  start: "2024-06-10T08:00:00Z"
headless:
  duration: 30s
logger:
  level: debug
metrics:
  enabled: true
  listen: ":9191"
`))
	require.NoError(t, err)
	assert.Equal(t, "headless", cfg.Sim.Runner)
	assert.Equal(t, 60.0, cfg.Sim.Speed)
	assert.Equal(t, 30*time.Second, cfg.Headless.Duration)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, ":9191", cfg.Metrics.Listen)
	assert.Equal(t, time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC), cfg.StartTime())
}

func TestLoadRejectsUnknownRunner(t *testing.T) {
	_, err := Load(writeConfig(t, "sim:\n  runner: holograph\n"))
	assert.Error(t, err)
}

func TestLoadRejectsBadStartTime(t *testing.T) {
	_, err := Load(writeConfig(t, "sim:\n  start: yesterday\n"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HALO_RUNNER", "term")
	t.Setenv("HALO_LOG_LEVEL", "warn")
	cfg, err := Load(filepath.Join(t.TempDir(), "halo.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "term", cfg.Sim.Runner)
	assert.Equal(t, "warn", cfg.Logger.Level)
}
