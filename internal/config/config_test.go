package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, uint64(3000), cfg.ScanCadenceMs)
	assert.Equal(t, uint64(250), cfg.DebounceMs)
	assert.Equal(t, 1, cfg.ChannelMin)
	assert.Equal(t, 11, cfg.ChannelMax)
	assert.Equal(t, 64, cfg.SnapshotCapacity)
	assert.Equal(t, 15, cfg.ShowCount)
	assert.Equal(t, 40, cfg.BarWidth)
	assert.Equal(t, 22, cfg.NameMax)
	assert.True(t, cfg.IncludeHidden)
	assert.False(t, cfg.SerialMirror)
	require.NoError(t, cfg.Validate())
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("scan_cadence_ms: 5000\nshow_count: 10\nserial_mirror: true\n"))
	require.NoError(t, err)
	assert.Equal(t, uint64(5000), cfg.ScanCadenceMs)
	assert.Equal(t, 10, cfg.ShowCount)
	assert.True(t, cfg.SerialMirror)
	assert.Equal(t, 11, cfg.ChannelMax)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unknown key", "scan_interval: 10\n"},
		{"channel above band", "channel_max: 15\n"},
		{"inverted range", "channel_min: 9\nchannel_max: 3\n"},
		{"zero capacity", "snapshot_capacity: 0\n"},
		{"cadence too short", "scan_cadence_ms: 10\n"},
		{"bad yaml", "show_count: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "monitor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debounce_ms: 400\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(400), cfg.DebounceMs)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
