package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := config.LoadFile(writeConfig(t, "environment:\n  name: production\n"))
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment.Name)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, "data/taskflow.db", cfg.Database.Path)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, 30, cfg.Auth.LoginRatePerMin)
	assert.Equal(t, 2*time.Second, cfg.Sync.Debounce)
	assert.Equal(t, "@every 15m", cfg.Sync.Schedule)
	assert.Equal(t, "primary", cfg.GoogleCalendar.CalendarID)
	assert.Empty(t, cfg.Sync.RemoteURL)
}

func TestLoadFile_Overrides(t *testing.T) {
	cfg, err := config.LoadFile(writeConfig(t, `
http_server:
  port: 9090
scheduler:
  timezone: Asia/Tokyo
sync:
  remote_url: https://sync.example.com
  debounce: 500ms
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	assert.Equal(t, "Asia/Tokyo", cfg.Scheduler.Timezone)
	assert.Equal(t, "https://sync.example.com", cfg.Sync.RemoteURL)
	assert.Equal(t, 500*time.Millisecond, cfg.Sync.Debounce)
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bad timezone", body: "scheduler:\n  timezone: Mars/Olympus\n"},
		{name: "bad port", body: "http_server:\n  port: 70000\n"},
		{name: "bad remote", body: "sync:\n  remote_url: ftp://example.com\n"},
		{name: "broken yaml", body: "http_server: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadFile(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
