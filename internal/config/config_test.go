package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, 30*time.Second, cfg.Sync.HeartbeatInterval.Std())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
store:
  driver: boltdb
  path: /tmp/state.db
sync:
  heartbeat_interval: 10s
  dedup_window: 2s
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "boltdb", cfg.Store.Driver)
	assert.Equal(t, 10*time.Second, cfg.Sync.HeartbeatInterval.Std())
	assert.Equal(t, 2*time.Second, cfg.Sync.DedupWindow.Std())
	assert.Equal(t, "debug", cfg.Log.Level)

	// Untouched sections keep their defaults.
	assert.Equal(t, 5*time.Minute, cfg.Transport.BufferTTL.Std())
}

func TestLoad_InvalidDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sync:\n  queue_ttl: soon\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDuration_MarshalRoundtrip(t *testing.T) {
	out, err := yaml.Marshal(struct {
		D Duration `yaml:"d"`
	}{D: Duration(90 * time.Second)})
	require.NoError(t, err)
	assert.Equal(t, "d: 1m30s\n", string(out))
}
