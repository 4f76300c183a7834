package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON may be strings ("30s") or nanosecond numbers.
	jsonBody := `{
		"app": {
			"version": "1.2.3",
			"user_agent": "fitsync-json"
		},
		"storage": {
			"db": { "dsn": "/var/lib/fitsync/fitsync.db" }
		},
		"adapter": {
			"base_url": "https://api.fitjourney.test",
			"request_timeout": "30s"
		},
		"workers": {
			"sync_interval": "5m",
			"recalc_interval": "24h"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "fitsync-json", cfg.App.UserAgent)
	assert.Equal(t, "/var/lib/fitsync/fitsync.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://api.fitjourney.test", cfg.Adapter.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 24*time.Hour, cfg.Workers.RecalcInterval)
	assert.Empty(t, cfg.JSONFilePath, "json file path must not propagate from a json source")
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON("/does/not/exist.json")
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_InvalidBody(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter": [`), 0o600))

	cfg, err := parseJSON(p)
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Duration
	}{
		{name: "string form", in: `"90s"`, want: 90 * time.Second},
		{name: "number form (nanoseconds)", in: `60000000000`, want: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, d.UnmarshalJSON([]byte(tt.in)))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
