package telemetry

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"halo/hal"
)

func TestMetricsExposeCounters(t *testing.T) {
	var stats hal.Stats
	stats.RTCReads.Add(3)
	stats.MinutesShows.Add(7)

	srv := httptest.NewServer(Handler(&stats))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "halo_rtc_reads_total 3")
	assert.Contains(t, string(body), "halo_ring_minutes_shows_total 7")
}

func TestHealthz(t *testing.T) {
	srv := httptest.NewServer(Handler(&hal.Stats{}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
