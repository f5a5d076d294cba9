// Package config provides configuration for the watchsync daemon and demo.
// It supports a YAML configuration file over sensible defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values can be written as "30s".
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders the duration as a Go duration string.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config is the complete watchsync configuration.
type Config struct {
	// Store configures the shared state store.
	Store StoreConfig `yaml:"store"`

	// Transport configures the proximity transport adapter.
	Transport TransportConfig `yaml:"transport"`

	// Sync configures the sync coordinator.
	Sync SyncConfig `yaml:"sync"`

	// Log configures logging.
	Log LogConfig `yaml:"log"`
}

// StoreConfig holds shared state store settings.
type StoreConfig struct {
	// Driver selects the store backend: "sqlite" or "boltdb".
	Driver string `yaml:"driver"`
	// Path is the store file location.
	Path string `yaml:"path"`
}

// TransportConfig holds transport adapter settings.
type TransportConfig struct {
	// BufferTTL caps how long an unsent frame survives reachability flaps.
	BufferTTL Duration `yaml:"buffer_ttl"`
	// SweepInterval is how often the stale-buffer sweep runs.
	SweepInterval Duration `yaml:"sweep_interval"`
	// ActivationRetries bounds the backoff attempts per activation.
	ActivationRetries uint64 `yaml:"activation_retries"`
}

// SyncConfig holds sync coordinator settings.
type SyncConfig struct {
	// DedupWindow collapses duplicate offline operations enqueued within
	// this span.
	DedupWindow Duration `yaml:"dedup_window"`
	// QueueTTL drops offline operations older than this on drain.
	QueueTTL Duration `yaml:"queue_ttl"`
	// HeartbeatInterval paces the liveness message to the peer.
	HeartbeatInterval Duration `yaml:"heartbeat_interval"`
	// CompletedHold is how long the completed sync state stays visible.
	CompletedHold Duration `yaml:"completed_hold"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// Default returns the configuration defaults.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Driver: "sqlite",
			Path:   "watchsync.db",
		},
		Transport: TransportConfig{
			BufferTTL:         Duration(5 * time.Minute),
			SweepInterval:     Duration(time.Minute),
			ActivationRetries: 4,
		},
		Sync: SyncConfig{
			DedupWindow:       Duration(time.Second),
			QueueTTL:          Duration(5 * time.Minute),
			HeartbeatInterval: Duration(30 * time.Second),
			CompletedHold:     Duration(500 * time.Millisecond),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error; the defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
